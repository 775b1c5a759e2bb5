package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"quarrybackend/config"
	"quarrybackend/models"
)

func GetDriverPayments(c *gin.Context) {
	query := bson.M{}
	if start, end, ok := parseDateRange(c.Query("startDate"), c.Query("endDate")); ok {
		query["date"] = bson.M{"$gte": start, "$lte": end}
	}
	if driver := c.Query("driverName"); driver != "" {
		query["driverName"] = bson.M{"$regex": driver, "$options": "i"}
	}

	cursor, err := config.DriverPaymentCollection.Find(context.TODO(), query,
		options.Find().SetSort(bson.M{"date": -1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve driver payments"})
		return
	}
	defer cursor.Close(context.TODO())

	payments := []models.DriverPayment{}
	if err = cursor.All(context.TODO(), &payments); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to decode driver payments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(payments), "data": payments})
}

func CreateDriverPayment(c *gin.Context) {
	var payment models.DriverPayment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if payment.Date.IsZero() {
		payment.Date = time.Now()
	}
	payment.CreatedAt = time.Now()
	payment.UpdatedAt = payment.CreatedAt

	result, err := config.DriverPaymentCollection.InsertOne(context.TODO(), payment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create driver payment"})
		return
	}
	payment.ID = result.InsertedID.(primitive.ObjectID)

	if !payment.TripID.IsZero() {
		applyDriverPaymentToTrip(payment.TripID, payment.Amount, payment.PadiKasu)
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": payment})
}

func UpdateDriverPayment(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid payment ID"})
		return
	}

	var previous models.DriverPayment
	err = config.DriverPaymentCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&previous)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Driver payment not found"})
		return
	}

	payment := previous
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	payment.ID = objID
	payment.UpdatedAt = time.Now()

	_, err = config.DriverPaymentCollection.ReplaceOne(context.TODO(), bson.M{"_id": objID}, payment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update driver payment"})
		return
	}

	if !previous.TripID.IsZero() && previous.TripID != payment.TripID {
		applyDriverPaymentToTrip(previous.TripID, 0, 0)
	}
	if !payment.TripID.IsZero() {
		applyDriverPaymentToTrip(payment.TripID, payment.Amount, payment.PadiKasu)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": payment})
}

func DeleteDriverPayment(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid payment ID"})
		return
	}

	var payment models.DriverPayment
	err = config.DriverPaymentCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&payment)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Driver payment not found"})
		return
	}

	_, err = config.DriverPaymentCollection.DeleteOne(context.TODO(), bson.M{"_id": objID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete driver payment"})
		return
	}

	if !payment.TripID.IsZero() {
		applyDriverPaymentToTrip(payment.TripID, 0, 0)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{}})
}

// applyDriverPaymentToTrip overwrites the linked trip's driver cost fields
// and recomputes its totals and derived expenses. Last write wins.
func applyDriverPaymentToTrip(tripID primitive.ObjectID, amount, bata float64) {
	var trip models.Trip
	err := config.TripCollection.FindOne(context.TODO(), bson.M{"_id": tripID}).Decode(&trip)
	if err != nil {
		log.Printf("driver payment sync: trip %s not found: %v", tripID.Hex(), err)
		return
	}

	trip.DriverAmount = amount
	trip.DriverBata = bata
	trip.ApplyCosts()
	trip.UpdatedAt = time.Now()

	_, err = config.TripCollection.ReplaceOne(context.TODO(), bson.M{"_id": tripID}, trip)
	if err != nil {
		log.Printf("driver payment sync: failed to update trip %s: %v", tripID.Hex(), err)
		return
	}
	rebuildTripExpenses(trip)
}
