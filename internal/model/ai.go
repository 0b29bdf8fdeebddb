package model

type QualityAnalysis struct {
	Score  QualityScore
	Issues []string
}

type ListingSuggestions struct {
	Title           string
	Description     string
	Keywords        []string
	LocationInsight string
}

type ListingSuggestionRequest struct {
	Title       string
	Category    string
	Description string
	Country     string
}

type ChatReply struct {
	Text string
}
