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

func GetCustomers(c *gin.Context) {
	search := c.Query("search")
	status := c.Query("status")

	query := bson.M{}
	if status != "" {
		query["status"] = status
	}
	if search != "" {
		regex := bson.M{"$regex": search, "$options": "i"}
		query["$or"] = []bson.M{
			{"name": regex},
			{"phone": regex},
			{"gstNumber": regex},
		}
	}

	cursor, err := config.CustomerCollection.Find(context.TODO(), query,
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve customers"})
		return
	}
	defer cursor.Close(context.TODO())

	customers := []models.Customer{}
	if err = cursor.All(context.TODO(), &customers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to decode customers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(customers), "data": customers})
}

func GetCustomer(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid customer ID"})
		return
	}

	var customer models.Customer
	err = config.CustomerCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&customer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Customer not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve customer"})
		}
		return
	}

	cursor, err := config.SalesCollection.Find(context.TODO(),
		bson.M{"customer": objID, "status": "active"})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve sales"})
		return
	}
	defer cursor.Close(context.TODO())

	var summary models.CustomerSummary
	for cursor.Next(context.TODO()) {
		var sale models.Sales
		if err := cursor.Decode(&sale); err != nil {
			continue
		}
		summary.TotalSales += sale.GrandTotal
		summary.TotalPaid += sale.AmountPaid
		summary.TotalBalance += sale.BalanceAmount
		summary.TotalInvoices++
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": customer, "summary": summary})
}

func AddCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if customer.Status == "" {
		customer.Status = "active"
	}
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = customer.CreatedAt

	result, err := config.CustomerCollection.InsertOne(context.TODO(), customer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create customer"})
		return
	}
	customer.ID = result.InsertedID.(primitive.ObjectID)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": customer})
}

func UpdateCustomer(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid customer ID"})
		return
	}

	var customer models.Customer
	err = config.CustomerCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&customer)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Customer not found"})
		return
	}

	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	customer.ID = objID
	customer.UpdatedAt = time.Now()

	_, err = config.CustomerCollection.ReplaceOne(context.TODO(), bson.M{"_id": objID}, customer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update customer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": customer})
}

func DeleteCustomer(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid customer ID"})
		return
	}

	result, err := config.CustomerCollection.DeleteOne(context.TODO(), bson.M{"_id": objID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete customer"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Customer not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Customer deleted"})
}
