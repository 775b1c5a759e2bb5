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

func GetProductions(c *gin.Context) {
	query := bson.M{}
	if start, end, ok := parseDateRange(c.Query("startDate"), c.Query("endDate")); ok {
		query["date"] = bson.M{"$gte": start, "$lte": end}
	}
	if stoneType := c.Query("stoneType"); stoneType != "" {
		if stID, err := primitive.ObjectIDFromHex(stoneType); err == nil {
			query["productionDetails.stoneType"] = stID
		}
	}
	if machine := c.Query("machine"); machine != "" {
		if mID, err := primitive.ObjectIDFromHex(machine); err == nil {
			query["machines.machineId"] = mID
		}
	}

	cursor, err := config.ProductionCollection.Find(context.TODO(), query,
		options.Find().SetSort(bson.M{"date": -1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve production entries"})
		return
	}
	defer cursor.Close(context.TODO())

	productions := []models.Production{}
	if err = cursor.All(context.TODO(), &productions); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to decode production entries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(productions), "data": productions})
}

func AddProduction(c *gin.Context) {
	var production models.Production
	if err := c.ShouldBindJSON(&production); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if production.Date.IsZero() {
		production.Date = time.Now()
	}
	if production.CreatedBy == "" {
		production.CreatedBy = "Admin"
	}
	production.CreatedAt = time.Now()
	production.UpdatedAt = production.CreatedAt

	result, err := config.ProductionCollection.InsertOne(context.TODO(), production)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create production entry"})
		return
	}
	production.ID = result.InsertedID.(primitive.ObjectID)

	applyProductionStock(production, 1)
	applyProductionHmr(production, 1)
	syncProductionAttendance(production)
	rebuildProductionExpenses(production)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": production})
}

// UpdateProduction reverses the previous revision's stock and HMR deltas
// before applying the new ones, so edits do not double count.
func UpdateProduction(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid production ID"})
		return
	}

	var previous models.Production
	err = config.ProductionCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&previous)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Production entry not found"})
		return
	}

	production := previous
	if err := c.ShouldBindJSON(&production); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	production.ID = objID
	production.UpdatedAt = time.Now()

	_, err = config.ProductionCollection.ReplaceOne(context.TODO(), bson.M{"_id": objID}, production)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update production entry"})
		return
	}

	applyProductionStock(previous, -1)
	applyProductionHmr(previous, -1)
	applyProductionStock(production, 1)
	applyProductionHmr(production, 1)
	syncProductionAttendance(production)
	rebuildProductionExpenses(production)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": production})
}

func DeleteProduction(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid production ID"})
		return
	}

	var production models.Production
	err = config.ProductionCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&production)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Production entry not found"})
		return
	}

	_, err = config.ProductionCollection.DeleteOne(context.TODO(), bson.M{"_id": objID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete production entry"})
		return
	}

	applyProductionStock(production, -1)
	applyProductionHmr(production, -1)
	deleteDerivedExpenses(models.SourceProduction, production.ID)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Production entry deleted"})
}

// GetStockReport computes each stone type's balance as opening stock plus
// total produced minus total sold. currentStock rides along so drift in the
// running counter is visible against the computed figure.
func GetStockReport(c *gin.Context) {
	produced := map[primitive.ObjectID]float64{}
	prodCur, err := config.ProductionCollection.Find(context.TODO(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve production entries"})
		return
	}
	defer prodCur.Close(context.TODO())
	for prodCur.Next(context.TODO()) {
		var production models.Production
		if err := prodCur.Decode(&production); err != nil {
			continue
		}
		for _, detail := range production.ProductionDetails {
			produced[detail.StoneType] += detail.Quantity
		}
	}

	sold := map[primitive.ObjectID]float64{}
	saleCur, err := config.SalesCollection.Find(context.TODO(), bson.M{"status": "active"})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve sales"})
		return
	}
	defer saleCur.Close(context.TODO())
	for saleCur.Next(context.TODO()) {
		var sale models.Sales
		if err := saleCur.Decode(&sale); err != nil {
			continue
		}
		for _, item := range sale.Items {
			if !item.StoneType.IsZero() {
				sold[item.StoneType] += item.Quantity
			}
		}
	}

	stoneCur, err := config.StoneTypeCollection.Find(context.TODO(), bson.M{"status": "Active"})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve stone types"})
		return
	}
	defer stoneCur.Close(context.TODO())

	type stockRow struct {
		ID           primitive.ObjectID `json:"id"`
		Name         string             `json:"name"`
		Unit         string             `json:"unit"`
		DefaultPrice float64            `json:"defaultPrice"`
		Produced     float64            `json:"produced"`
		Dispatched   float64            `json:"dispatched"`
		Balance      float64            `json:"balance"`
		CurrentStock float64            `json:"currentStock"`
	}

	report := []stockRow{}
	for stoneCur.Next(context.TODO()) {
		var stone models.StoneType
		if err := stoneCur.Decode(&stone); err != nil {
			continue
		}
		report = append(report, stockRow{
			ID:           stone.ID,
			Name:         stone.Name,
			Unit:         stone.Unit,
			DefaultPrice: stone.DefaultPrice,
			Produced:     produced[stone.ID],
			Dispatched:   sold[stone.ID],
			Balance:      stone.OpeningStock + produced[stone.ID] - sold[stone.ID],
			CurrentStock: stone.CurrentStock,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": report})
}
