package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"quarrybackend/config"
	"quarrybackend/models"
)

func GetTrips(c *gin.Context) {
	query := bson.M{}
	if start, end, ok := parseDay(c.Query("date")); ok {
		query["date"] = bson.M{"$gte": start, "$lte": end}
	}

	cursor, err := config.TripCollection.Find(context.TODO(), query,
		options.Find().SetSort(bson.M{"date": -1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve trips"})
		return
	}
	defer cursor.Close(context.TODO())

	trips := []models.Trip{}
	if err = cursor.All(context.TODO(), &trips); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to decode trips"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(trips), "data": trips})
}

func GetTrip(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid trip ID"})
		return
	}

	var trip models.Trip
	err = config.TripCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&trip)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Trip not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve trip"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": trip})
}

func CreateTrip(c *gin.Context) {
	var trip models.Trip
	if err := c.ShouldBindJSON(&trip); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if trip.Date.IsZero() {
		trip.Date = time.Now()
	}
	if trip.Status == "" {
		trip.Status = "Completed"
	}
	if trip.LoadUnit == "" {
		trip.LoadUnit = "Tons"
	}
	trip.ApplyCosts()
	trip.CreatedAt = time.Now()
	trip.UpdatedAt = trip.CreatedAt

	result, err := config.TripCollection.InsertOne(context.TODO(), trip)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create trip"})
		return
	}
	trip.ID = result.InsertedID.(primitive.ObjectID)

	if _, vendorID, ok := contractorFor(trip.VehicleID); ok {
		adjustVendorBalance(vendorID, trip.TripRate)
	}
	rebuildTripExpenses(trip)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": trip})
}

// UpdateTrip re-reads the stored trip first: the previous revision's
// contribution to the vendor balance has to come off before the new one
// goes on.
func UpdateTrip(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid trip ID"})
		return
	}

	var previous models.Trip
	err = config.TripCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&previous)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Trip not found"})
		return
	}

	trip := previous
	if err := c.ShouldBindJSON(&trip); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	trip.ID = objID
	trip.ApplyCosts()
	trip.UpdatedAt = time.Now()

	_, err = config.TripCollection.ReplaceOne(context.TODO(), bson.M{"_id": objID}, trip)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update trip"})
		return
	}

	if _, vendorID, ok := contractorFor(previous.VehicleID); ok {
		adjustVendorBalance(vendorID, -previous.TripRate)
	}
	if _, vendorID, ok := contractorFor(trip.VehicleID); ok {
		adjustVendorBalance(vendorID, trip.TripRate)
	}
	rebuildTripExpenses(trip)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": trip})
}

func DeleteTrip(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid trip ID"})
		return
	}

	var trip models.Trip
	err = config.TripCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&trip)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Trip not found"})
		return
	}

	_, err = config.TripCollection.DeleteOne(context.TODO(), bson.M{"_id": objID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete trip"})
		return
	}

	if _, vendorID, ok := contractorFor(trip.VehicleID); ok {
		adjustVendorBalance(vendorID, -trip.TripRate)
	}
	deleteDerivedExpenses(models.SourceTrip, trip.ID)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{}})
}

func GetTripStats(c *gin.Context) {
	cursor, err := config.TripCollection.Find(context.TODO(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve trips"})
		return
	}
	defer cursor.Close(context.TODO())

	stats := gin.H{}
	var totalTrips int
	var totalIncome, totalDieselCost, totalDriverPayment, totalBata, totalOtherExpenses, totalProfit float64

	for cursor.Next(context.TODO()) {
		var trip models.Trip
		if err := cursor.Decode(&trip); err != nil {
			continue
		}
		totalTrips++
		totalIncome += trip.TripRate
		totalDieselCost += trip.DieselTotal
		totalDriverPayment += trip.DriverAmount
		totalBata += trip.DriverBata
		totalOtherExpenses += trip.OtherExpenses
		totalProfit += trip.NetProfit
	}

	stats["totalTrips"] = totalTrips
	stats["totalIncome"] = totalIncome
	stats["totalDieselCost"] = totalDieselCost
	stats["totalDriverPayment"] = totalDriverPayment
	stats["totalBata"] = totalBata
	stats["totalOtherExpenses"] = totalOtherExpenses
	stats["totalProfit"] = totalProfit

	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}

// ConvertTripToSale turns a completed haulage trip into a cash invoice for
// its linked customer. Runs at most once per trip.
func ConvertTripToSale(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid trip ID"})
		return
	}

	var trip models.Trip
	err = config.TripCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&trip)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Trip not found"})
		return
	}

	if trip.IsConvertedToSale {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Trip is already converted to a sale"})
		return
	}
	if trip.CustomerID.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Trip has no linked customer"})
		return
	}

	var stone models.StoneType
	err = config.StoneTypeCollection.FindOne(context.TODO(), bson.M{"_id": trip.StoneTypeID}).Decode(&stone)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Stone type not found"})
		return
	}

	rate := trip.TripRate
	if trip.LoadQuantity > 0 {
		rate = trip.TripRate / trip.LoadQuantity
	}
	sale := models.Sales{
		InvoiceDate: trip.Date,
		Customer:    trip.CustomerID,
		Items: []models.SalesItem{{
			Item:      stone.Name,
			StoneType: trip.StoneTypeID,
			Quantity:  trip.LoadQuantity,
			Unit:      trip.LoadUnit,
			Rate:      rate,
		}},
		PaymentType: "Cash",
		Status:      "active",
		Notes:       "Converted from trip " + trip.ID.Hex(),
	}
	sale.ApplyItemAmounts()
	sale.ApplyTotals()

	if msg := checkStockAvailable(sale.Items); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
		return
	}

	count, err := config.SalesCollection.CountDocuments(context.TODO(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to generate invoice number"})
		return
	}
	sale.InvoiceNumber = models.FormatInvoiceNumber(time.Now(), count)
	sale.CreatedAt = time.Now()
	sale.UpdatedAt = sale.CreatedAt

	result, err := config.SalesCollection.InsertOne(context.TODO(), sale)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create sale"})
		return
	}
	sale.ID = result.InsertedID.(primitive.ObjectID)

	syncSaleCreated(sale)

	_, err = config.TripCollection.UpdateByID(context.TODO(), objID, bson.M{
		"$set": bson.M{"isConvertedToSale": true, "saleId": sale.ID, "updatedAt": time.Now()},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Sale created but trip not marked converted"})
		return
	}
	trip.IsConvertedToSale = true
	trip.SaleID = sale.ID

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": sale, "trip": trip})
}
