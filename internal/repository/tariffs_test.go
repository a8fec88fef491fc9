package repository

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spedire/rate-service/internal/domain/model"
)

func TestTariffRecordStorageRoundTrip(t *testing.T) {
	records := []model.TariffRecord{
		{Region: "MILANO", WeightKg: 500, Price: decimal.NewFromFloat(50.00)},
		{Region: "ROMA", WeightKg: 1000, Price: decimal.RequireFromString("80.50")},
	}

	docs := toStorage(records)
	require.Len(t, docs, 2)
	assert.Equal(t, "MILANO", docs[0].Region)
	assert.Equal(t, "50", docs[0].Price)
	assert.Equal(t, "80.5", docs[1].Price)

	restored, err := fromStorage(tariffTableDoc{
		ID:        primitive.NewObjectID(),
		Records:   docs,
		Active:    true,
		Version:   3,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		CreatedBy: "ops",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, restored.Version)
	assert.True(t, restored.Active)
	assert.Equal(t, "ops", restored.CreatedBy)
	require.Len(t, restored.Records, 2)
	for i := range records {
		assert.Equal(t, records[i].Region, restored.Records[i].Region)
		assert.Equal(t, records[i].WeightKg, restored.Records[i].WeightKg)
		assert.True(t, records[i].Price.Equal(restored.Records[i].Price),
			"record %d price: got %s, want %s", i, restored.Records[i].Price, records[i].Price)
	}
}

func TestFromStorageRejectsCorruptPrice(t *testing.T) {
	_, err := fromStorage(tariffTableDoc{
		Records: []tariffRecordDoc{{Region: "MILANO", WeightKg: 500, Price: "not-a-price"}},
	})
	assert.Error(t, err)
}

func TestDefaultMongoConfig(t *testing.T) {
	cfg := DefaultMongoConfig()
	assert.Equal(t, uint64(50), cfg.MaxPoolSize)
	assert.Equal(t, uint64(10), cfg.MinPoolSize)
	assert.Equal(t, 10*time.Second, cfg.ConnectTimeout)
	assert.True(t, cfg.EnableCompression)
}
