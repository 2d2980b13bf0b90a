package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dharamchandpatle/RefineryIQ/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const snapshotsCollection = "kpi_snapshots"

// snapshotDoc tolerates both timestamp spellings found in persisted
// snapshots; writers used "timestamp", older ones "last_updated".
type snapshotDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	TotalEnergy *float64           `bson:"total_energy,omitempty"`
	AvgEnergy   *float64           `bson:"avg_energy,omitempty"`
	AvgSEC      *float64           `bson:"avg_sec,omitempty"`
	AnomalyRate *float64           `bson:"anomaly_rate,omitempty"`
	Timestamp   *time.Time         `bson:"timestamp,omitempty"`
	LastUpdated *time.Time         `bson:"last_updated,omitempty"`
}

func (d snapshotDoc) toDomain() domain.KPISnapshot {
	ts := d.Timestamp
	if ts == nil {
		ts = d.LastUpdated
	}
	return domain.KPISnapshot{
		ID:          d.ID.Hex(),
		TotalEnergy: d.TotalEnergy,
		AvgEnergy:   d.AvgEnergy,
		AvgSEC:      d.AvgSEC,
		AnomalyRate: d.AnomalyRate,
		LastUpdated: ts,
	}
}

// SnapshotRepository reads persisted KPI snapshots, newest first.
type SnapshotRepository struct {
	db *DB
}

// NewSnapshotRepository creates a new snapshot repository.
func NewSnapshotRepository(db *DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Latest returns the newest persisted snapshot, or nil when the
// collection is empty.
func (r *SnapshotRepository) Latest(ctx context.Context) (*domain.KPISnapshot, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	var doc snapshotDoc
	err := r.db.Collection(snapshotsCollection).FindOne(ctx, bson.M{}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest snapshot: %w", err)
	}

	snapshot := doc.toDomain()
	return &snapshot, nil
}

// List returns up to limit persisted snapshots, newest first. An empty
// collection yields an empty slice.
func (r *SnapshotRepository) List(ctx context.Context, limit int) ([]domain.KPISnapshot, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.db.Collection(snapshotsCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer cursor.Close(ctx)

	snapshots := []domain.KPISnapshot{}
	for cursor.Next(ctx) {
		var doc snapshotDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode snapshot: %w", err)
		}
		snapshots = append(snapshots, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshots: %w", err)
	}

	return snapshots, nil
}
