package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/communitycare/report-system/internal/core/domain"
	"github.com/communitycare/report-system/internal/core/ports"
)

const reportsCollection = "reports"

// ReportRepository implements ports.ReportRepository using MongoDB.
type ReportRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{db: db, coll: db.Collection(reportsCollection)}
}

type mongoReport struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	UserID       string             `bson:"user_id"`
	ReporterName string             `bson:"name"`
	ProblemType  string             `bson:"problem_type"`
	Location     string             `bson:"location"`
	Issue        string             `bson:"issue"`
	Priority     string             `bson:"priority"`
	Status       string             `bson:"status"`
	PhotoData    string             `bson:"photo_data,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (mr *mongoReport) toDomain() *domain.Report {
	return &domain.Report{
		ID:           mr.ID.Hex(),
		UserID:       mr.UserID,
		ReporterName: mr.ReporterName,
		ProblemType:  mr.ProblemType,
		Location:     mr.Location,
		Issue:        mr.Issue,
		Priority:     domain.ReportPriority(mr.Priority),
		Status:       domain.ReportStatus(mr.Status),
		PhotoData:    mr.PhotoData,
		CreatedAt:    mr.CreatedAt.UTC(),
	}
}

func (r *ReportRepository) Create(ctx context.Context, report *domain.Report) (*domain.Report, error) {
	doc := mongoReport{
		UserID:       report.UserID,
		ReporterName: report.ReporterName,
		ProblemType:  report.ProblemType,
		Location:     report.Location,
		Issue:        report.Issue,
		Priority:     string(report.Priority),
		Status:       string(report.Status),
		PhotoData:    report.PhotoData,
		CreatedAt:    report.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert report: %w", err)
	}

	created := *report
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ReportRepository) FindByID(ctx context.Context, id string) (*domain.Report, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrReportNotFound
	}

	var mr mongoReport
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("find report: %w", err)
	}
	return mr.toDomain(), nil
}

func (r *ReportRepository) ListAll(ctx context.Context) ([]*domain.Report, error) {
	return r.list(ctx, bson.M{})
}

func (r *ReportRepository) ListByOwner(ctx context.Context, userID string) ([]*domain.Report, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *ReportRepository) list(ctx context.Context, filter bson.M) ([]*domain.Report, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer cur.Close(ctx)

	reports := make([]*domain.Report, 0)
	for cur.Next(ctx) {
		var mr mongoReport
		if err := cur.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode report: %w", err)
		}
		reports = append(reports, mr.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return reports, nil
}

// ApplyStatusChange commits the status write, the owner's notification, and
// the audit entry in one transaction: either all three land or none do.
func (r *ReportRepository) ApplyStatusChange(ctx context.Context, change ports.StatusChange) error {
	oid, err := primitive.ObjectIDFromHex(change.ReportID)
	if err != nil {
		return domain.ErrReportNotFound
	}

	session, err := r.db.Client().StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := r.coll.UpdateOne(sc,
			bson.M{"_id": oid},
			bson.M{"$set": bson.M{"status": string(change.NewStatus)}},
		)
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, domain.ErrReportNotFound
		}

		n := change.Notification
		if _, err := r.db.Collection(notificationsCollection).InsertOne(sc, bson.M{
			"user_id":    n.UserID,
			"report_id":  n.ReportID,
			"message":    n.Message,
			"type":       n.Type,
			"is_read":    false,
			"created_at": n.CreatedAt,
		}); err != nil {
			return nil, err
		}

		l := change.Log
		if _, err := r.db.Collection(adminLogsCollection).InsertOne(sc, bson.M{
			"admin_id":    l.AdminID,
			"action":      l.Action,
			"target_type": l.TargetType,
			"target_id":   l.TargetID,
			"details":     l.Details,
			"created_at":  l.CreatedAt,
		}); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrReportNotFound) {
			return domain.ErrReportNotFound
		}
		return fmt.Errorf("apply status change: %w", err)
	}
	return nil
}

func (r *ReportRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrReportNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrReportNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing the owner and recency queries.
func (r *ReportRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
