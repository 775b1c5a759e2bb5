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

func GetIncomes(c *gin.Context) {
	query := bson.M{}
	if start, end, ok := parseDateRange(c.Query("startDate"), c.Query("endDate")); ok {
		query["date"] = bson.M{"$gte": start, "$lte": end}
	}
	if source := c.Query("source"); source != "" {
		query["source"] = source
	}

	cursor, err := config.IncomeCollection.Find(context.TODO(), query,
		options.Find().SetSort(bson.M{"date": -1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve incomes"})
		return
	}
	defer cursor.Close(context.TODO())

	incomes := []models.Income{}
	if err = cursor.All(context.TODO(), &incomes); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to decode incomes"})
		return
	}

	var total float64
	for _, income := range incomes {
		total += income.Amount
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(incomes), "total": total, "data": incomes})
}

func AddIncome(c *gin.Context) {
	var income models.Income
	if err := c.ShouldBindJSON(&income); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if income.Date.IsZero() {
		income.Date = time.Now()
	}
	if income.PaymentStatus == "" {
		income.PaymentStatus = "Paid"
	}
	income.CreatedAt = time.Now()
	income.UpdatedAt = income.CreatedAt

	result, err := config.IncomeCollection.InsertOne(context.TODO(), income)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create income"})
		return
	}
	income.ID = result.InsertedID.(primitive.ObjectID)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": income})
}

func DeleteIncome(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid income ID"})
		return
	}

	result, err := config.IncomeCollection.DeleteOne(context.TODO(), bson.M{"_id": objID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete income"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Income not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{}})
}
