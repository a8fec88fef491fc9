package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spedire/rate-service/internal/domain/model"
)

// TariffTableDocument is one versioned tariff table. Exactly one document is
// active at a time; replacement deactivates the current one and inserts the
// next version.
type TariffTableDocument struct {
	ID        primitive.ObjectID   `json:"id"`
	Records   []model.TariffRecord `json:"records"`
	Active    bool                 `json:"active"`
	Version   int                  `json:"version"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
	CreatedBy string               `json:"created_by,omitempty"`
}

// tariffRecordDoc is the storage form of a record. Prices are stored as
// decimal strings; decimal.Decimal has no BSON representation of its own.
type tariffRecordDoc struct {
	Region   string  `bson:"region"`
	WeightKg float64 `bson:"weight_kg"`
	Price    string  `bson:"price"`
}

type tariffTableDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Records   []tariffRecordDoc  `bson:"records"`
	Active    bool               `bson:"active"`
	Version   int                `bson:"version"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
	CreatedBy string             `bson:"created_by,omitempty"`
}

func toStorage(records []model.TariffRecord) []tariffRecordDoc {
	docs := make([]tariffRecordDoc, len(records))
	for i, r := range records {
		docs[i] = tariffRecordDoc{Region: r.Region, WeightKg: r.WeightKg, Price: r.Price.String()}
	}
	return docs
}

func fromStorage(doc tariffTableDoc) (*TariffTableDocument, error) {
	records := make([]model.TariffRecord, len(doc.Records))
	for i, r := range doc.Records {
		price, err := decimal.NewFromString(r.Price)
		if err != nil {
			return nil, err
		}
		records[i] = model.TariffRecord{Region: r.Region, WeightKg: r.WeightKg, Price: price}
	}
	return &TariffTableDocument{
		ID:        doc.ID,
		Records:   records,
		Active:    doc.Active,
		Version:   doc.Version,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
		CreatedBy: doc.CreatedBy,
	}, nil
}

// TariffRepository provides persistence for tariff tables.
type TariffRepository struct {
	collection *mongo.Collection
}

// NewTariffRepository creates a tariff repository on the given connection.
func NewTariffRepository(db *MongoDB) *TariffRepository {
	return &TariffRepository{collection: db.TariffTables}
}

// GetActive returns the active tariff table, or nil when none exists yet.
func (r *TariffRepository) GetActive(ctx context.Context) (*TariffTableDocument, error) {
	var doc tariffTableDoc
	err := r.collection.FindOne(ctx, bson.M{"active": true}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return fromStorage(doc)
}

// Replace deactivates the current table and inserts the records as the next
// version.
func (r *TariffRepository) Replace(ctx context.Context, records []model.TariffRecord, createdBy string) (*TariffTableDocument, error) {
	version := 1
	var current tariffTableDoc
	err := r.collection.FindOne(ctx, bson.M{}, options.FindOne().SetSort(bson.M{"version": -1})).Decode(&current)
	if err == nil {
		version = current.Version + 1
	} else if err != mongo.ErrNoDocuments {
		return nil, err
	}

	_, err = r.collection.UpdateMany(
		ctx,
		bson.M{"active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
	)
	if err != nil {
		return nil, err
	}

	doc := tariffTableDoc{
		ID:        primitive.NewObjectID(),
		Records:   toStorage(records),
		Active:    true,
		Version:   version,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		CreatedBy: createdBy,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return fromStorage(doc)
}

// List returns tariff table versions, newest first.
func (r *TariffRepository) List(ctx context.Context, limit int) ([]TariffTableDocument, error) {
	opts := options.Find().SetSort(bson.M{"version": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []tariffTableDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	result := make([]TariffTableDocument, 0, len(docs))
	for _, doc := range docs {
		converted, err := fromStorage(doc)
		if err != nil {
			return nil, err
		}
		result = append(result, *converted)
	}
	return result, nil
}
