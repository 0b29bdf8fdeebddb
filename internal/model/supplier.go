package model

import "time"

type VerificationStatus string

const (
	VerificationVerified   VerificationStatus = "Verified"
	VerificationPending    VerificationStatus = "Pending"
	VerificationUnverified VerificationStatus = "Unverified"
)

type Supplier struct {
	ID                 string
	Name               string
	Country            string
	VerificationStatus VerificationStatus
	Rating             float64
	MemberSince        time.Time
	Bio                string
}
