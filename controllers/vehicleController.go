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

func GetVehicles(c *gin.Context) {
	query := bson.M{}
	if vehicleType := c.Query("type"); vehicleType != "" {
		query["type"] = vehicleType
	}
	if ownership := c.Query("ownershipType"); ownership != "" {
		query["ownershipType"] = ownership
	}
	if status := c.Query("status"); status != "" {
		query["status"] = status
	}
	if search := c.Query("search"); search != "" {
		query["$or"] = []bson.M{
			{"name": bson.M{"$regex": search, "$options": "i"}},
			{"vehicleNumber": bson.M{"$regex": search, "$options": "i"}},
			{"registrationNumber": bson.M{"$regex": search, "$options": "i"}},
		}
	}

	cursor, err := config.VehicleCollection.Find(context.TODO(), query,
		options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve vehicles"})
		return
	}
	defer cursor.Close(context.TODO())

	vehicles := []models.Vehicle{}
	if err = cursor.All(context.TODO(), &vehicles); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to decode vehicles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(vehicles), "data": vehicles})
}

func GetVehicle(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid vehicle ID"})
		return
	}

	var vehicle models.Vehicle
	err = config.VehicleCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&vehicle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Vehicle not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve vehicle"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": vehicle})
}

func AddVehicle(c *gin.Context) {
	var vehicle models.Vehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if vehicle.OwnershipType == "" {
		vehicle.OwnershipType = "Own"
	}
	if vehicle.OwnershipType == "Contract" && vehicle.Contractor.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Contract vehicles need a contractor"})
		return
	}
	if vehicle.Status == "" {
		vehicle.Status = "active"
	}
	vehicle.CreatedAt = time.Now()
	vehicle.UpdatedAt = vehicle.CreatedAt

	result, err := config.VehicleCollection.InsertOne(context.TODO(), vehicle)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create vehicle"})
		return
	}
	vehicle.ID = result.InsertedID.(primitive.ObjectID)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": vehicle})
}

func UpdateVehicle(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid vehicle ID"})
		return
	}

	var vehicle models.Vehicle
	err = config.VehicleCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&vehicle)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Vehicle not found"})
		return
	}

	if err := c.ShouldBindJSON(&vehicle); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if vehicle.OwnershipType == "Contract" && vehicle.Contractor.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Contract vehicles need a contractor"})
		return
	}
	vehicle.ID = objID
	vehicle.UpdatedAt = time.Now()

	_, err = config.VehicleCollection.ReplaceOne(context.TODO(), bson.M{"_id": objID}, vehicle)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update vehicle"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": vehicle})
}

func DeleteVehicle(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid vehicle ID"})
		return
	}

	result, err := config.VehicleCollection.DeleteOne(context.TODO(), bson.M{"_id": objID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete vehicle"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Vehicle not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{}})
}
