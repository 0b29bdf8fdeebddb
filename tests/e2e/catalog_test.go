//go:build integration

package e2e

import (
	"errors"
	"net/http"
	"time"

	"github.com/IBM/sarama"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/converter"
	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
	batchrepo "github.com/MadScie254/Bordaless-SKU-Lab/internal/repository/batch"
	settingsrepo "github.com/MadScie254/Bordaless-SKU-Lab/internal/repository/settings"
	"github.com/MadScie254/Bordaless-SKU-Lab/platform/kafka"
)

var _ = Describe("Catalog e2e", func() {
	var clientID string

	BeforeEach(func() {
		resp, _ := doJSON(http.MethodGet, "/api/v1/filters", "", nil)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		clientID = resp.Header.Get(clientIDHeader)
		Expect(clientID).NotTo(BeEmpty())
	})

	Context("ListBatches", func() {
		It("returns every seeded batch under default filters", func() {
			resp, body := doJSON(http.MethodGet, "/api/v1/batches", clientID, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			Expect(batchIDs(body)).To(ContainElements(seededIDs()))

			bounds := body["bounds"].(map[string]any)
			Expect(bounds["maxPrice"]).To(BeNumerically("==", 90))
			Expect(bounds["maxMoq"]).To(BeNumerically("==", 800))
			Expect(bounds["fallback"]).To(BeFalse())
		})

		It("narrows by country and price range", func() {
			resp, _ := doJSON(http.MethodPut, "/api/v1/filters", clientID, map[string]any{
				"selectedCountries": []string{"Kenya", "Peru"},
				"priceRange":        map[string]any{"min": 20, "max": 90},
			})
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			resp, body := doJSON(http.MethodGet, "/api/v1/batches", clientID, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(batchIDs(body)).To(ConsistOf(seeded[1].ID))

			resp, _ = doJSON(http.MethodPost, "/api/v1/filters/reset", clientID, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			_, body = doJSON(http.MethodGet, "/api/v1/batches", clientID, nil)
			Expect(batchIDs(body)).To(ContainElements(seededIDs()))
		})

		It("keeps filter state per client", func() {
			resp, _ := doJSON(http.MethodPut, "/api/v1/filters", clientID, map[string]any{
				"selectedCountries": []string{"Vietnam"},
			})
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			_, mine := doJSON(http.MethodGet, "/api/v1/batches", clientID, nil)
			Expect(batchIDs(mine)).To(ConsistOf(seeded[2].ID))

			_, other := doJSON(http.MethodGet, "/api/v1/batches", "", nil)
			Expect(batchIDs(other)).To(ContainElements(seededIDs()))
		})
	})

	Context("Search", func() {
		It("falls back to the literal query without an AI key", func() {
			resp, body := doJSON(http.MethodPost, "/api/v1/search", clientID, map[string]any{
				"query": seeded[0].Title,
			})
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(body["fallback"]).To(BeTrue())
			Expect(body["filters"].(map[string]any)["searchTerm"]).To(Equal(seeded[0].Title))

			_, list := doJSON(http.MethodGet, "/api/v1/batches", clientID, nil)
			Expect(batchIDs(list)).To(ContainElement(seeded[0].ID))
		})
	})

	Context("Preferences", func() {
		It("persists favorites and settings in postgres", func() {
			resp, body := doJSON(http.MethodPost, "/api/v1/favorites/"+seeded[1].ID+"/toggle", clientID, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(body["isFavorite"]).To(BeTrue())

			resp, _ = doJSON(http.MethodPut, "/api/v1/filters", clientID, map[string]any{"viewMode": "favorites"})
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			_, list := doJSON(http.MethodGet, "/api/v1/batches", clientID, nil)
			Expect(batchIDs(list)).To(ConsistOf(seeded[1].ID))

			resp, _ = doJSON(http.MethodPut, "/api/v1/settings", clientID, map[string]any{"theme": "light"})
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var rows int
			err := postgresC.Pool().QueryRow(ctx,
				"SELECT count(*) FROM client_settings WHERE client_id = $1", clientID,
			).Scan(&rows)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(BeNumerically(">=", 2))

			_, settings := doJSON(http.MethodGet, "/api/v1/settings", clientID, nil)
			Expect(settings["theme"]).To(Equal("light"))
		})

		It("rejects an unknown theme", func() {
			resp, _ := doJSON(http.MethodPut, "/api/v1/settings", clientID, map[string]any{"theme": "sepia"})
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})
	})

	Context("Batch detail", func() {
		It("returns 404 for an unknown batch", func() {
			resp, _ := doJSON(http.MethodGet, "/api/v1/batches/batch_missing", clientID, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})

		It("estimates landed cost", func() {
			resp, body := doJSON(http.MethodPost, "/api/v1/batches/"+seeded[0].ID+"/landed-cost", clientID, map[string]any{
				"quantity":    seeded[0].MOQ,
				"destination": "EU",
			})
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(body["batchId"]).To(Equal(seeded[0].ID))
			Expect(body["total"]).NotTo(BeEmpty())
		})
	})

	Context("Dashboard", func() {
		It("aggregates the catalog", func() {
			resp, body := doJSON(http.MethodGet, "/api/v1/analytics", clientID, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(body["totalSkus"]).To(BeNumerically(">=", len(seeded)))
			Expect(body["potentialRevenue"]).NotTo(BeEmpty())
			Expect(body["qualityDistribution"]).To(HaveKey("A"))
		})

		It("serves supplier profiles", func() {
			resp, body := doJSON(http.MethodGet, "/api/v1/suppliers/supp_nairobi_weavers", clientID, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(body["country"]).To(Equal("Kenya"))

			resp, _ = doJSON(http.MethodGet, "/api/v1/suppliers/supp_missing", clientID, nil)
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})
	})
})

var _ = Describe("Batch listed events", func() {
	It("adds a batch published by another instance to the live catalog", func() {
		b := NewFakeBatch("Ghana", 30, 100)
		batch := batchrepo.EntityToModel(&b)

		payload, err := converter.NewKafkaConverter().BatchListedToPayload(batch)
		Expect(err).NotTo(HaveOccurred())

		producer, err := sarama.NewSyncProducer(kafkaC.Config().Brokers, producerConfig())
		Expect(err).NotTo(HaveOccurred())
		defer producer.Close() //nolint:errcheck

		_, _, err = producer.SendMessage(&sarama.ProducerMessage{
			Topic:   batchListedTopic,
			Key:     sarama.StringEncoder(b.ID),
			Value:   sarama.ByteEncoder(payload),
			Headers: []sarama.RecordHeader{
				{Key: []byte(kafka.HeaderEventType), Value: []byte(model.EventBatchListed)},
			},
		})
		Expect(err).NotTo(HaveOccurred())

		Eventually(func(g Gomega) {
			resp, body := doJSON(http.MethodGet, "/api/v1/batches/"+b.ID, "", nil)
			g.Expect(resp.StatusCode).To(Equal(http.StatusOK))
			g.Expect(body["country"]).To(Equal("Ghana"))
		}).WithTimeout(30 * time.Second).WithPolling(500 * time.Millisecond).Should(Succeed())

		_, countries := doJSON(http.MethodGet, "/api/v1/countries", "", nil)
		Expect(countries["countries"]).To(ContainElement("Ghana"))
	})
})

var _ = Describe("Redis settings repository", func() {
	It("round-trips values and reports missing keys", func() {
		repo := settingsrepo.NewRedisRepository(redisC.Client(), time.Minute)

		_, err := repo.Get(ctx, "client-e2e", "theme")
		Expect(errors.Is(err, model.ErrSettingNotFound)).To(BeTrue())

		Expect(repo.Set(ctx, "client-e2e", "theme", []byte(`"light"`))).To(Succeed())

		got, err := repo.Get(ctx, "client-e2e", "theme")
		Expect(err).NotTo(HaveOccurred())
		Expect(string(got)).To(Equal(`"light"`))
	})
})
