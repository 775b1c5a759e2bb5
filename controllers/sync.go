package controllers

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"quarrybackend/config"
	"quarrybackend/models"
	"quarrybackend/utils"
)

// Synchronizers propagate one entity's save into its dependents. They are
// best effort: the triggering write is already committed, so any failure
// here is logged and swallowed rather than surfaced to the caller.

// applyProductionStock moves each produced line's net quantity into the
// stone type's running stock. sign is +1 on create and -1 when reversing a
// previous revision of the document.
func applyProductionStock(p models.Production, sign float64) {
	for _, detail := range p.ProductionDetails {
		net := (detail.Quantity - detail.DispatchedQuantity) * sign
		if net == 0 {
			continue
		}
		_, err := config.StoneTypeCollection.UpdateByID(context.TODO(), detail.StoneType,
			bson.M{"$inc": bson.M{"currentStock": net}})
		if err != nil {
			log.Printf("production %s: stock update for %s failed: %v",
				p.ID.Hex(), detail.StoneType.Hex(), err)
		}
	}
}

// applyProductionHmr bumps each machine's hour meter by its recorded
// working hours. Reversed with sign -1 on update/delete.
func applyProductionHmr(p models.Production, sign float64) {
	for _, machine := range p.Machines {
		if machine.WorkingHours <= 0 {
			continue
		}
		_, err := config.VehicleCollection.UpdateByID(context.TODO(), machine.MachineID,
			bson.M{"$inc": bson.M{"currentHmr": machine.WorkingHours * sign}})
		if err != nil {
			log.Printf("production %s: hmr update for %s failed: %v",
				p.ID.Hex(), machine.MachineID.Hex(), err)
		}
	}
}

// syncProductionAttendance marks everyone on the shift roster Present for
// the shift date. An existing record for the same (labour, date) is
// overwritten, not merged.
func syncProductionAttendance(p models.Production) {
	workers := append([]models.ProductionWorker{}, p.LabourDetails...)
	workers = append(workers, p.OperatorDetails...)

	day := utils.AttendanceDay(p.Date)

	for _, worker := range workers {
		labourID := worker.LabourID
		if labourID.IsZero() {
			if worker.Name == "" {
				continue
			}
			var labour models.Labour
			err := config.LabourCollection.FindOne(context.TODO(),
				bson.M{"name": worker.Name, "status": "Active"}).Decode(&labour)
			if err != nil {
				log.Printf("production %s: no labour record for %q, attendance skipped",
					p.ID.Hex(), worker.Name)
				continue
			}
			labourID = labour.ID
		}

		filter := bson.M{"labour": labourID, "date": day}
		update := bson.M{
			"$set": bson.M{
				"status":        "Present",
				"overtimeHours": 0.0,
				"remarks":       "Marked via production entry",
				"updatedAt":     time.Now(),
			},
			"$setOnInsert": bson.M{
				"labour":    labourID,
				"date":      day,
				"isPaid":    false,
				"createdAt": time.Now(),
			},
		}
		_, err := config.AttendanceCollection.UpdateOne(context.TODO(), filter, update,
			options.Update().SetUpsert(true))
		if err != nil {
			log.Printf("production %s: attendance upsert for %s failed: %v",
				p.ID.Hex(), labourID.Hex(), err)
		}
	}
}

// deleteDerivedExpenses drops every expense row generated from the given
// source document. Resync always starts here so re-running a synchronizer
// leaves exactly one consistent set of rows.
func deleteDerivedExpenses(kind string, sourceID primitive.ObjectID) {
	_, err := config.ExpenseCollection.DeleteMany(context.TODO(),
		bson.M{"source.kind": kind, "source.id": sourceID})
	if err != nil {
		log.Printf("derived expenses for %s %s: delete failed: %v", kind, sourceID.Hex(), err)
	}
}

// rebuildProductionExpenses regenerates the expense rows a production shift
// produces: one labour-wages row for the shift wage and one diesel row per
// machine with fuel drawn, priced at the latest recorded diesel rate.
func rebuildProductionExpenses(p models.Production) {
	deleteDerivedExpenses(models.SourceProduction, p.ID)

	now := time.Now()
	date := p.Date
	if date.IsZero() {
		date = now
	}

	if p.ShiftWage > 0 {
		names := p.WorkerNames()
		labourName := "Production Workers"
		if len(names) > 0 {
			labourName = strings.Join(names, ", ")
		}
		expense := models.Expense{
			Category:     models.CategoryLabourWages,
			Amount:       p.ShiftWage,
			Date:         date,
			LabourName:   labourName,
			SiteAssigned: p.SiteName,
			PaymentMode:  "Cash",
			Source:       models.SourceRef{Kind: models.SourceProduction, ID: p.ID},
			ReferenceID:  "Production Shift: " + p.Shift,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if _, err := config.ExpenseCollection.InsertOne(context.TODO(), expense); err != nil {
			log.Printf("production %s: wage expense failed: %v", p.ID.Hex(), err)
		}
	}

	dieselRate := lastDieselRate()
	for _, machine := range p.Machines {
		if machine.DieselUsed <= 0 {
			continue
		}
		var vehicle models.Vehicle
		vehicleName := "Unknown"
		vehicleID := machine.MachineID
		if err := config.VehicleCollection.FindOne(context.TODO(),
			bson.M{"_id": machine.MachineID}).Decode(&vehicle); err == nil {
			vehicleName = vehicle.DisplayName()
		}

		expense := models.Expense{
			Category:         models.CategoryDiesel,
			Amount:           machine.DieselUsed * dieselRate,
			Quantity:         machine.DieselUsed,
			Rate:             dieselRate,
			Date:             date,
			Description:      "Diesel consumption recorded via production entry",
			VehicleID:        vehicleID,
			VehicleOrMachine: vehicleName,
			PaymentMode:      "Credit",
			Source:           models.SourceRef{Kind: models.SourceProduction, ID: p.ID},
			ReferenceID:      "Production Machine: " + vehicleName,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if _, err := config.ExpenseCollection.InsertOne(context.TODO(), expense); err != nil {
			log.Printf("production %s: diesel expense failed: %v", p.ID.Hex(), err)
		}
	}
}

// lastDieselRate is the rate on the most recent diesel expense that carries
// one, 0 when the ledger has none yet.
func lastDieselRate() float64 {
	var latest models.Expense
	err := config.ExpenseCollection.FindOne(context.TODO(),
		bson.M{"category": models.CategoryDiesel, "rate": bson.M{"$gt": 0}},
		options.FindOne().SetSort(bson.M{"date": -1})).Decode(&latest)
	if err != nil {
		return 0
	}
	return latest.Rate
}

// contractorFor resolves the transport vendor billing for a vehicle, when
// the vehicle is contract-owned.
func contractorFor(vehicleID primitive.ObjectID) (models.Vehicle, primitive.ObjectID, bool) {
	var vehicle models.Vehicle
	err := config.VehicleCollection.FindOne(context.TODO(),
		bson.M{"_id": vehicleID}).Decode(&vehicle)
	if err != nil {
		return vehicle, primitive.NilObjectID, false
	}
	if vehicle.OwnershipType != "Contract" || vehicle.Contractor.IsZero() {
		return vehicle, primitive.NilObjectID, false
	}
	return vehicle, vehicle.Contractor, true
}

// adjustVendorBalance moves a transport vendor's outstanding balance by
// delta. Blind increment; the nightly reconciliation covers lost updates.
func adjustVendorBalance(vendorID primitive.ObjectID, delta float64) {
	if vendorID.IsZero() || delta == 0 {
		return
	}
	_, err := config.TransportVendorCollection.UpdateByID(context.TODO(), vendorID,
		bson.M{"$inc": bson.M{"outstandingBalance": delta}})
	if err != nil {
		log.Printf("vendor %s: balance adjust %+.2f failed: %v", vendorID.Hex(), delta, err)
	}
}

// rebuildTripExpenses regenerates the expense rows a trip produces:
// driver wages, contract transport charges and sundry trip costs.
func rebuildTripExpenses(trip models.Trip) {
	deleteDerivedExpenses(models.SourceTrip, trip.ID)

	now := time.Now()
	date := trip.Date
	if date.IsZero() {
		date = now
	}
	reference := fmt.Sprintf("Trip: %s -> %s", trip.FromLocation, trip.ToLocation)

	vehicle, _, contractOwned := contractorFor(trip.VehicleID)

	if amount := trip.DriverAmount + trip.DriverBata; amount > 0 {
		expense := models.Expense{
			Category:         models.CategoryLabourWages,
			Amount:           amount,
			Date:             date,
			DriverName:       vehicle.DriverName,
			WorkType:         "Driver",
			VehicleID:        trip.VehicleID,
			VehicleOrMachine: vehicle.DisplayName(),
			PaymentMode:      "Cash",
			Source:           models.SourceRef{Kind: models.SourceTrip, ID: trip.ID},
			ReferenceID:      reference,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if _, err := config.ExpenseCollection.InsertOne(context.TODO(), expense); err != nil {
			log.Printf("trip %s: driver wage expense failed: %v", trip.ID.Hex(), err)
		}
	}

	if contractOwned && trip.TripRate > 0 {
		expense := models.Expense{
			Category:         models.CategoryTransport,
			Amount:           trip.TripRate,
			Date:             date,
			TransportType:    "Contract Vehicle",
			FromLocation:     trip.FromLocation,
			ToLocation:       trip.ToLocation,
			VehicleID:        trip.VehicleID,
			VehicleOrMachine: vehicle.DisplayName(),
			PaymentMode:      "Credit",
			Source:           models.SourceRef{Kind: models.SourceTrip, ID: trip.ID},
			ReferenceID:      reference,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if _, err := config.ExpenseCollection.InsertOne(context.TODO(), expense); err != nil {
			log.Printf("trip %s: transport expense failed: %v", trip.ID.Hex(), err)
		}
	}

	if trip.OtherExpenses > 0 {
		expense := models.Expense{
			Category:         models.CategoryOfficeMisc,
			Amount:           trip.OtherExpenses,
			Date:             date,
			Description:      "Other trip expenses",
			VehicleID:        trip.VehicleID,
			VehicleOrMachine: vehicle.DisplayName(),
			PaymentMode:      "Cash",
			Source:           models.SourceRef{Kind: models.SourceTrip, ID: trip.ID},
			ReferenceID:      reference,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if _, err := config.ExpenseCollection.InsertOne(context.TODO(), expense); err != nil {
			log.Printf("trip %s: misc expense failed: %v", trip.ID.Hex(), err)
		}
	}
}
