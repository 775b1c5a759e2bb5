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

func GetStoneTypes(c *gin.Context) {
	query := bson.M{}
	if status := c.Query("status"); status != "" {
		query["status"] = status
	}

	cursor, err := config.StoneTypeCollection.Find(context.TODO(), query,
		options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve stone types"})
		return
	}
	defer cursor.Close(context.TODO())

	stones := []models.StoneType{}
	if err = cursor.All(context.TODO(), &stones); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to decode stone types"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(stones), "data": stones})
}

func AddStoneType(c *gin.Context) {
	var stone models.StoneType
	if err := c.ShouldBindJSON(&stone); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if stone.Unit == "" {
		stone.Unit = "Tons"
	}
	if stone.Status == "" {
		stone.Status = "Active"
	}
	// A new product's balance starts at its opening stock.
	stone.CurrentStock = stone.OpeningStock
	stone.CreatedAt = time.Now()
	stone.UpdatedAt = stone.CreatedAt

	result, err := config.StoneTypeCollection.InsertOne(context.TODO(), stone)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Stone type with this name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create stone type"})
		return
	}
	stone.ID = result.InsertedID.(primitive.ObjectID)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": stone})
}

func UpdateStoneType(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid stone type ID"})
		return
	}

	var stone models.StoneType
	err = config.StoneTypeCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&stone)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Stone type not found"})
		return
	}

	if err := c.ShouldBindJSON(&stone); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	stone.ID = objID
	stone.UpdatedAt = time.Now()

	_, err = config.StoneTypeCollection.ReplaceOne(context.TODO(), bson.M{"_id": objID}, stone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update stone type"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": stone})
}

func DeleteStoneType(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid stone type ID"})
		return
	}

	result, err := config.StoneTypeCollection.DeleteOne(context.TODO(), bson.M{"_id": objID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete stone type"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Stone type not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{}})
}

func GetExplosiveMaterials(c *gin.Context) {
	cursor, err := config.ExplosiveMaterialCollection.Find(context.TODO(), bson.M{},
		options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve explosive materials"})
		return
	}
	defer cursor.Close(context.TODO())

	materials := []models.ExplosiveMaterial{}
	if err = cursor.All(context.TODO(), &materials); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to decode explosive materials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(materials), "data": materials})
}

func AddExplosiveMaterial(c *gin.Context) {
	var material models.ExplosiveMaterial
	if err := c.ShouldBindJSON(&material); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if material.Status == "" {
		material.Status = "Active"
	}
	material.CreatedAt = time.Now()
	material.UpdatedAt = material.CreatedAt

	result, err := config.ExplosiveMaterialCollection.InsertOne(context.TODO(), material)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Explosive material with this name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create explosive material"})
		return
	}
	material.ID = result.InsertedID.(primitive.ObjectID)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": material})
}

func UpdateExplosiveMaterial(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid material ID"})
		return
	}

	var material models.ExplosiveMaterial
	err = config.ExplosiveMaterialCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&material)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Explosive material not found"})
		return
	}

	if err := c.ShouldBindJSON(&material); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	material.ID = objID
	material.UpdatedAt = time.Now()

	_, err = config.ExplosiveMaterialCollection.ReplaceOne(context.TODO(), bson.M{"_id": objID}, material)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update explosive material"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": material})
}

func DeleteExplosiveMaterial(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid material ID"})
		return
	}

	result, err := config.ExplosiveMaterialCollection.DeleteOne(context.TODO(), bson.M{"_id": objID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete explosive material"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Explosive material not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{}})
}
