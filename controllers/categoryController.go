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

func GetExpenseCategories(c *gin.Context) {
	cursor, err := config.ExpenseCategoryCollection.Find(context.TODO(), bson.M{},
		options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve expense categories"})
		return
	}
	defer cursor.Close(context.TODO())

	categories := []models.ExpenseCategory{}
	if err = cursor.All(context.TODO(), &categories); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to decode expense categories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(categories), "data": categories})
}

func AddExpenseCategory(c *gin.Context) {
	var category models.ExpenseCategory
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if category.Status == "" {
		category.Status = "Active"
	}
	category.CreatedAt = time.Now()
	category.UpdatedAt = category.CreatedAt

	result, err := config.ExpenseCategoryCollection.InsertOne(context.TODO(), category)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Expense category already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create expense category"})
		return
	}
	category.ID = result.InsertedID.(primitive.ObjectID)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": category})
}

func GetIncomeSources(c *gin.Context) {
	cursor, err := config.IncomeSourceCollection.Find(context.TODO(), bson.M{},
		options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve income sources"})
		return
	}
	defer cursor.Close(context.TODO())

	sources := []models.IncomeSource{}
	if err = cursor.All(context.TODO(), &sources); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to decode income sources"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(sources), "data": sources})
}

func AddIncomeSource(c *gin.Context) {
	var source models.IncomeSource
	if err := c.ShouldBindJSON(&source); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if source.Status == "" {
		source.Status = "Active"
	}
	source.CreatedAt = time.Now()
	source.UpdatedAt = source.CreatedAt

	result, err := config.IncomeSourceCollection.InsertOne(context.TODO(), source)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Income source already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create income source"})
		return
	}
	source.ID = result.InsertedID.(primitive.ObjectID)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": source})
}
