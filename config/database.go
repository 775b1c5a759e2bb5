package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client *mongo.Client

	CustomerCollection          *mongo.Collection
	StoneTypeCollection         *mongo.Collection
	ExplosiveMaterialCollection *mongo.Collection
	VehicleCollection           *mongo.Collection
	LabourCollection            *mongo.Collection
	AttendanceCollection        *mongo.Collection
	AdvanceCollection           *mongo.Collection
	ProductionCollection        *mongo.Collection
	SalesCollection             *mongo.Collection
	PaymentCollection           *mongo.Collection
	TripCollection              *mongo.Collection
	ExpenseCollection           *mongo.Collection
	IncomeCollection            *mongo.Collection
	ExpenseCategoryCollection   *mongo.Collection
	IncomeSourceCollection      *mongo.Collection
	TransportVendorCollection   *mongo.Collection
	LabourContractorCollection  *mongo.Collection
	ExplosiveSupplierCollection *mongo.Collection
	VendorPaymentCollection     *mongo.Collection
	DriverPaymentCollection     *mongo.Collection
)

func ConnectDatabase() {
	client, err := mongo.NewClient(options.Client().ApplyURI(os.Getenv("MONGO_URI")))
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = client.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatal(err)
	}

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "quarrybooks"
	}

	Client = client
	db := client.Database(dbName)

	CustomerCollection = db.Collection("customers")
	StoneTypeCollection = db.Collection("stonetypes")
	ExplosiveMaterialCollection = db.Collection("explosivematerials")
	VehicleCollection = db.Collection("vehicles")
	LabourCollection = db.Collection("labours")
	AttendanceCollection = db.Collection("attendances")
	AdvanceCollection = db.Collection("advances")
	ProductionCollection = db.Collection("productions")
	SalesCollection = db.Collection("sales")
	PaymentCollection = db.Collection("payments")
	TripCollection = db.Collection("trips")
	ExpenseCollection = db.Collection("expenses")
	IncomeCollection = db.Collection("incomes")
	ExpenseCategoryCollection = db.Collection("expensecategories")
	IncomeSourceCollection = db.Collection("incomesources")
	TransportVendorCollection = db.Collection("transportvendors")
	LabourContractorCollection = db.Collection("labourcontractors")
	ExplosiveSupplierCollection = db.Collection("explosivesuppliers")
	VendorPaymentCollection = db.Collection("vendorpayments")
	DriverPaymentCollection = db.Collection("driverpayments")

	ensureIndexes(ctx)
	log.Println("Connected to MongoDB")
}

// ensureIndexes creates the unique constraints the handlers rely on:
// one attendance record per labour per day, unique master names,
// unique invoice numbers.
func ensureIndexes(ctx context.Context) {
	_, err := AttendanceCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "labour", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Printf("attendance index: %v", err)
	}

	nameIndexed := []*mongo.Collection{
		StoneTypeCollection,
		ExplosiveMaterialCollection,
		ExpenseCategoryCollection,
		IncomeSourceCollection,
	}
	for _, coll := range nameIndexed {
		_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			log.Printf("%s name index: %v", coll.Name(), err)
		}
	}

	_, err = SalesCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "invoiceNumber", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Printf("sales invoice index: %v", err)
	}
}
