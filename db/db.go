package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	SedesCollection    *mongo.Collection
	ReservasCollection *mongo.Collection
	Client             *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "reservago"
	}

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	SedesCollection = Client.Database(dbName).Collection("sedes")
	ReservasCollection = Client.Database(dbName).Collection("reservas")
}

// EnsureIndexes creates query-optimization indexes; called once at startup.
// The reservas index is a hint only; it does not enforce slot uniqueness, so
// two concurrent bookings for the same escenario and overlapping range can
// both succeed.
func EnsureIndexes() {
	_, err := SedesCollection.Indexes().CreateMany(context.TODO(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "nombre", Value: 1}}},
		{Keys: bson.D{{Key: "escenarios.escenarioid", Value: 1}}},
		{Keys: bson.D{{Key: "ubicacion.coordenadas", Value: "2dsphere"}}},
	})
	if err != nil {
		log.Printf("sedes index creation: %v", err)
	}

	_, err = ReservasCollection.Indexes().CreateMany(context.TODO(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "usuario", Value: 1}}},
		{Keys: bson.D{{Key: "escenarioid", Value: 1}, {Key: "fecha", Value: 1}}},
	})
	if err != nil {
		log.Printf("reservas index creation: %v", err)
	}
}
