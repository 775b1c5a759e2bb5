package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"quarrybackend/config"
	"quarrybackend/models"
)

func GetExpenses(c *gin.Context) {
	query := bson.M{}
	if start, end, ok := parseDateRange(c.Query("startDate"), c.Query("endDate")); ok {
		query["date"] = bson.M{"$gte": start, "$lte": end}
	}
	if category := c.Query("category"); category != "" {
		query["category"] = category
	}
	if mode := c.Query("paymentMode"); mode != "" {
		query["paymentMode"] = mode
	}
	if vehicle := c.Query("vehicleId"); vehicle != "" {
		if vehicleID, err := primitive.ObjectIDFromHex(vehicle); err == nil {
			query["vehicleId"] = vehicleID
		}
	}

	cursor, err := config.ExpenseCollection.Find(context.TODO(), query,
		options.Find().SetSort(bson.M{"date": -1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve expenses"})
		return
	}
	defer cursor.Close(context.TODO())

	expenses := []models.Expense{}
	if err = cursor.All(context.TODO(), &expenses); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to decode expenses"})
		return
	}

	var total float64
	for _, e := range expenses {
		total += e.Amount
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(expenses), "total": total, "data": expenses})
}

func AddExpense(c *gin.Context) {
	var expense models.Expense
	if err := c.ShouldBindJSON(&expense); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if expense.Date.IsZero() {
		expense.Date = time.Now()
	}
	if expense.PaymentMode == "" {
		expense.PaymentMode = "Cash"
	}
	// Manual rows never carry a source document.
	expense.Source = models.SourceRef{Kind: models.SourceManual}
	if expense.Amount == 0 && expense.Quantity > 0 && expense.Rate > 0 {
		expense.Amount = expense.Quantity * expense.Rate
	}
	expense.CreatedAt = time.Now()
	expense.UpdatedAt = expense.CreatedAt

	result, err := config.ExpenseCollection.InsertOne(context.TODO(), expense)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create expense"})
		return
	}
	expense.ID = result.InsertedID.(primitive.ObjectID)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": expense})
}

func UpdateExpense(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid expense ID"})
		return
	}

	var expense models.Expense
	err = config.ExpenseCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&expense)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Expense not found"})
		return
	}
	if expense.Source.Kind != models.SourceManual && expense.Source.Kind != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Derived expenses are managed by their source record"})
		return
	}

	if err := c.ShouldBindJSON(&expense); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	expense.ID = objID
	expense.Source = models.SourceRef{Kind: models.SourceManual}
	expense.UpdatedAt = time.Now()

	_, err = config.ExpenseCollection.ReplaceOne(context.TODO(), bson.M{"_id": objID}, expense)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update expense"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": expense})
}

func DeleteExpense(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid expense ID"})
		return
	}

	result, err := config.ExpenseCollection.DeleteOne(context.TODO(), bson.M{"_id": objID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete expense"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Expense not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{}})
}
