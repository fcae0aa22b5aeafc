package documents

import (
	"context"

	"clinicstack-service/internal/app/contracts"
	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/constvars"
	"clinicstack-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PatientDocumentMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientDocumentMongoRepository(db *mongo.Client, dbName string) contracts.PatientDocumentRepository {
	return &PatientDocumentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatientDocuments),
	}
}

func (r *PatientDocumentMongoRepository) CreateDocument(ctx context.Context, document *models.PatientDocument) (string, error) {
	result, err := r.Collection.InsertOne(ctx, document)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBNotObjectID(nil)
	}
	return objectID.Hex(), nil
}

func (r *PatientDocumentMongoRepository) FindByPatientID(ctx context.Context, tenantID, patientID string) ([]models.PatientDocument, error) {
	filter := bson.M{"tenantId": tenantID, "patientId": patientID}
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var documents []models.PatientDocument
	err = cursor.All(ctx, &documents)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return documents, nil
}

func (r *PatientDocumentMongoRepository) FindByID(ctx context.Context, tenantID, documentID string) (*models.PatientDocument, error) {
	objectID, err := primitive.ObjectIDFromHex(documentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var document models.PatientDocument
	filter := bson.M{"_id": objectID, "tenantId": tenantID}
	err = r.Collection.FindOne(ctx, filter).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &document, nil
}
