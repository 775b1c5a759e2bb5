package utils

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"quarrybackend/config"
	"quarrybackend/models"
)

// ReconcileVendorBalances recomputes every transport vendor's outstanding
// balance from its contract trips and vendor payments and writes the figure
// back when it has drifted. The trip and payment handlers keep the
// balance with blind increments, so concurrent writers can lose an update;
// this job runs nightly and corrects what they missed.
func ReconcileVendorBalances() {
	log.Println("Starting vendor balance reconciliation")

	cursor, err := config.TransportVendorCollection.Find(context.TODO(), bson.M{})
	if err != nil {
		log.Printf("reconciliation: list vendors: %v", err)
		return
	}
	defer cursor.Close(context.TODO())

	corrected := 0
	for cursor.Next(context.TODO()) {
		var vendor models.TransportVendor
		if err := cursor.Decode(&vendor); err != nil {
			log.Printf("reconciliation: decode vendor: %v", err)
			continue
		}

		expected, err := expectedBalance(vendor.ID)
		if err != nil {
			log.Printf("reconciliation: vendor %s: %v", vendor.ID.Hex(), err)
			continue
		}

		if Round2(expected) == Round2(vendor.OutstandingBalance) {
			continue
		}

		_, err = config.TransportVendorCollection.UpdateByID(context.TODO(), vendor.ID,
			bson.M{"$set": bson.M{"outstandingBalance": expected}})
		if err != nil {
			log.Printf("reconciliation: update vendor %s: %v", vendor.ID.Hex(), err)
			continue
		}
		log.Printf("reconciliation: vendor %s balance %.2f -> %.2f", vendor.Name, vendor.OutstandingBalance, expected)
		corrected++
	}

	if err := cursor.Err(); err != nil {
		log.Printf("reconciliation: cursor: %v", err)
	}
	log.Printf("Vendor balance reconciliation done, %d corrected", corrected)
}

// expectedBalance is the sum of tripRate over the vendor's contract-vehicle
// trips plus the invoiced amounts of its vendor payments, minus the amounts
// paid. Matches the increments the trip and payment handlers apply.
func expectedBalance(vendorID primitive.ObjectID) (float64, error) {
	vehicleCur, err := config.VehicleCollection.Find(context.TODO(),
		bson.M{"contractor": vendorID, "ownershipType": "Contract"})
	if err != nil {
		return 0, err
	}
	defer vehicleCur.Close(context.TODO())

	var vehicleIDs []interface{}
	for vehicleCur.Next(context.TODO()) {
		var vehicle models.Vehicle
		if err := vehicleCur.Decode(&vehicle); err != nil {
			continue
		}
		vehicleIDs = append(vehicleIDs, vehicle.ID)
	}

	var total float64
	if len(vehicleIDs) > 0 {
		tripCur, err := config.TripCollection.Find(context.TODO(),
			bson.M{"vehicleId": bson.M{"$in": vehicleIDs}})
		if err != nil {
			return 0, err
		}
		defer tripCur.Close(context.TODO())
		for tripCur.Next(context.TODO()) {
			var trip models.Trip
			if err := tripCur.Decode(&trip); err != nil {
				continue
			}
			total += trip.TripRate
		}
	}

	payCur, err := config.VendorPaymentCollection.Find(context.TODO(),
		bson.M{"vendorId": vendorID, "vendorType": models.VendorKindTransport})
	if err != nil {
		return 0, err
	}
	defer payCur.Close(context.TODO())
	for payCur.Next(context.TODO()) {
		var payment models.VendorPayment
		if err := payCur.Decode(&payment); err != nil {
			continue
		}
		total += payment.BalanceDelta()
	}

	return total, nil
}
