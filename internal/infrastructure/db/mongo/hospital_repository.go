package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bloodconnect/donor-match-api/internal/core/domain"
)

const hospitalsCollection = "hospitals"

// HospitalRepository implements ports.HospitalRepository using MongoDB.
type HospitalRepository struct {
	col *mongo.Collection
}

func NewHospitalRepository(db *mongo.Database) *HospitalRepository {
	return &HospitalRepository{col: db.Collection(hospitalsCollection)}
}

type bloodDocument struct {
	Type  string `bson:"type"`
	Units int    `bson:"units"`
}

type hospitalDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	HospitalName string             `bson:"hospitalName"`
	Email        string             `bson:"email"`
	Phone        string             `bson:"phone"`
	Address      string             `bson:"address"`
	City         string             `bson:"city"`
	Blood        []bloodDocument    `bson:"blood"`
	Password     string             `bson:"password,omitempty"`
	IsAdmin      bool               `bson:"isAdmin"`
}

func (d hospitalDocument) toDomain() domain.Hospital {
	blood := make([]domain.BloodStock, len(d.Blood))
	for i, b := range d.Blood {
		blood[i] = domain.BloodStock{Type: b.Type, Units: b.Units}
	}
	return domain.Hospital{
		ID:           d.ID.Hex(),
		HospitalName: d.HospitalName,
		Email:        d.Email,
		Phone:        d.Phone,
		Address:      d.Address,
		City:         d.City,
		Blood:        blood,
		PasswordHash: d.Password,
		IsAdmin:      d.IsAdmin,
	}
}

// Create inserts a hospital document. isAdmin is persisted as given; the
// registration path always passes false.
func (r *HospitalRepository) Create(ctx context.Context, hospital *domain.Hospital) (*domain.Hospital, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	blood := make([]bloodDocument, len(hospital.Blood))
	for i, b := range hospital.Blood {
		blood[i] = bloodDocument{Type: b.Type, Units: b.Units}
	}
	doc := hospitalDocument{
		HospitalName: hospital.HospitalName,
		Email:        hospital.Email,
		Phone:        hospital.Phone,
		Address:      hospital.Address,
		City:         hospital.City,
		Blood:        blood,
		Password:     hospital.PasswordHash,
		IsAdmin:      hospital.IsAdmin,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrHospitalExists
		}
		return nil, fmt.Errorf("insert hospital: %w", err)
	}

	created := *hospital
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *HospitalRepository) FindByEmail(ctx context.Context, email string) (*domain.Hospital, error) {
	return r.findOne(ctx, bson.M{"email": email}, options.FindOne())
}

func (r *HospitalRepository) FindByID(ctx context.Context, id string) (*domain.Hospital, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrHospitalNotFound, err)
	}
	return r.findOne(ctx, bson.M{"_id": oid}, options.FindOne().SetProjection(withoutPassword))
}

// FindMatching returns hospitals in the city whose inventory has an entry of
// the blood type. Unit counts are not considered.
func (r *HospitalRepository) FindMatching(ctx context.Context, key domain.MatchKey) ([]domain.Hospital, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"city": key.Location, "blood.type": key.BloodGroup}
	cur, err := r.col.Find(ctx, filter, options.Find().SetProjection(withoutPassword))
	if err != nil {
		return nil, fmt.Errorf("find hospitals: %w", err)
	}

	var docs []hospitalDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode hospitals: %w", err)
	}

	hospitals := make([]domain.Hospital, 0, len(docs))
	for _, d := range docs {
		hospitals = append(hospitals, d.toDomain())
	}
	return hospitals, nil
}

func (r *HospitalRepository) findOne(ctx context.Context, filter bson.M, opts *options.FindOneOptions) (*domain.Hospital, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc hospitalDocument
	if err := r.col.FindOne(ctx, filter, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrHospitalNotFound
		}
		return nil, fmt.Errorf("find hospital: %w", err)
	}
	hospital := doc.toDomain()
	return &hospital, nil
}
