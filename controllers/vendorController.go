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

// vendorCollections dispatches a VendorPayment's vendorType to the
// collection holding that vendor's outstanding balance.
func vendorCollections() map[string]*mongo.Collection {
	return map[string]*mongo.Collection{
		models.VendorKindTransport: config.TransportVendorCollection,
		models.VendorKindLabour:    config.LabourContractorCollection,
		models.VendorKindExplosive: config.ExplosiveSupplierCollection,
	}
}

func GetTransportVendors(c *gin.Context) {
	query := bson.M{}
	if search := c.Query("search"); search != "" {
		query["$or"] = []bson.M{
			{"name": bson.M{"$regex": search, "$options": "i"}},
			{"companyName": bson.M{"$regex": search, "$options": "i"}},
		}
	}

	cursor, err := config.TransportVendorCollection.Find(context.TODO(), query,
		options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve transport vendors"})
		return
	}
	defer cursor.Close(context.TODO())

	vendors := []models.TransportVendor{}
	if err = cursor.All(context.TODO(), &vendors); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to decode transport vendors"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(vendors), "data": vendors})
}

func AddTransportVendor(c *gin.Context) {
	var vendor models.TransportVendor
	if err := c.ShouldBindJSON(&vendor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	vendor.CreatedAt = time.Now()
	vendor.UpdatedAt = vendor.CreatedAt

	result, err := config.TransportVendorCollection.InsertOne(context.TODO(), vendor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create transport vendor"})
		return
	}
	vendor.ID = result.InsertedID.(primitive.ObjectID)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": vendor})
}

func UpdateTransportVendor(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid vendor ID"})
		return
	}

	var vendor models.TransportVendor
	err = config.TransportVendorCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&vendor)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Transport vendor not found"})
		return
	}

	if err := c.ShouldBindJSON(&vendor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	vendor.ID = objID
	vendor.UpdatedAt = time.Now()

	_, err = config.TransportVendorCollection.ReplaceOne(context.TODO(), bson.M{"_id": objID}, vendor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update transport vendor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": vendor})
}

func DeleteTransportVendor(c *gin.Context) {
	deleteVendorByID(c, config.TransportVendorCollection, "Transport vendor")
}

func GetLabourContractors(c *gin.Context) {
	query := bson.M{}
	if search := c.Query("search"); search != "" {
		query["name"] = bson.M{"$regex": search, "$options": "i"}
	}
	if status := c.Query("status"); status != "" {
		query["status"] = status
	}

	cursor, err := config.LabourContractorCollection.Find(context.TODO(), query,
		options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve labour contractors"})
		return
	}
	defer cursor.Close(context.TODO())

	contractors := []models.LabourContractor{}
	if err = cursor.All(context.TODO(), &contractors); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to decode labour contractors"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(contractors), "data": contractors})
}

func AddLabourContractor(c *gin.Context) {
	var contractor models.LabourContractor
	if err := c.ShouldBindJSON(&contractor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if contractor.Status == "" {
		contractor.Status = "Active"
	}
	contractor.CreatedAt = time.Now()
	contractor.UpdatedAt = contractor.CreatedAt

	result, err := config.LabourContractorCollection.InsertOne(context.TODO(), contractor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create labour contractor"})
		return
	}
	contractor.ID = result.InsertedID.(primitive.ObjectID)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": contractor})
}

func UpdateLabourContractor(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid contractor ID"})
		return
	}

	var contractor models.LabourContractor
	err = config.LabourContractorCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&contractor)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Labour contractor not found"})
		return
	}

	if err := c.ShouldBindJSON(&contractor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	contractor.ID = objID
	contractor.UpdatedAt = time.Now()

	_, err = config.LabourContractorCollection.ReplaceOne(context.TODO(), bson.M{"_id": objID}, contractor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update labour contractor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": contractor})
}

func DeleteLabourContractor(c *gin.Context) {
	deleteVendorByID(c, config.LabourContractorCollection, "Labour contractor")
}

func GetExplosiveSuppliers(c *gin.Context) {
	query := bson.M{}
	if search := c.Query("search"); search != "" {
		query["name"] = bson.M{"$regex": search, "$options": "i"}
	}

	cursor, err := config.ExplosiveSupplierCollection.Find(context.TODO(), query,
		options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve explosive suppliers"})
		return
	}
	defer cursor.Close(context.TODO())

	suppliers := []models.ExplosiveSupplier{}
	if err = cursor.All(context.TODO(), &suppliers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to decode explosive suppliers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(suppliers), "data": suppliers})
}

func AddExplosiveSupplier(c *gin.Context) {
	var supplier models.ExplosiveSupplier
	if err := c.ShouldBindJSON(&supplier); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	supplier.CreatedAt = time.Now()
	supplier.UpdatedAt = supplier.CreatedAt

	result, err := config.ExplosiveSupplierCollection.InsertOne(context.TODO(), supplier)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create explosive supplier"})
		return
	}
	supplier.ID = result.InsertedID.(primitive.ObjectID)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": supplier})
}

func UpdateExplosiveSupplier(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid supplier ID"})
		return
	}

	var supplier models.ExplosiveSupplier
	err = config.ExplosiveSupplierCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&supplier)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Explosive supplier not found"})
		return
	}

	if err := c.ShouldBindJSON(&supplier); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	supplier.ID = objID
	supplier.UpdatedAt = time.Now()

	_, err = config.ExplosiveSupplierCollection.ReplaceOne(context.TODO(), bson.M{"_id": objID}, supplier)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update explosive supplier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": supplier})
}

func DeleteExplosiveSupplier(c *gin.Context) {
	deleteVendorByID(c, config.ExplosiveSupplierCollection, "Explosive supplier")
}

func deleteVendorByID(c *gin.Context, collection *mongo.Collection, label string) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid vendor ID"})
		return
	}

	result, err := collection.DeleteOne(context.TODO(), bson.M{"_id": objID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete " + label})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": label + " not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{}})
}

func GetVendorPayments(c *gin.Context) {
	query := bson.M{}
	if vendorType := c.Query("vendorType"); vendorType != "" {
		query["vendorType"] = vendorType
	}
	if vendor := c.Query("vendorId"); vendor != "" {
		if vendorID, err := primitive.ObjectIDFromHex(vendor); err == nil {
			query["vendorId"] = vendorID
		}
	}
	if start, end, ok := parseDateRange(c.Query("startDate"), c.Query("endDate")); ok {
		query["date"] = bson.M{"$gte": start, "$lte": end}
	}

	cursor, err := config.VendorPaymentCollection.Find(context.TODO(), query,
		options.Find().SetSort(bson.M{"date": -1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve vendor payments"})
		return
	}
	defer cursor.Close(context.TODO())

	payments := []models.VendorPayment{}
	if err = cursor.All(context.TODO(), &payments); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to decode vendor payments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(payments), "data": payments})
}

// CreateVendorPayment records the settlement and moves the vendor's balance
// by invoiceAmount minus paidAmount: invoicing raises the liability, paying
// lowers it.
func CreateVendorPayment(c *gin.Context) {
	var payment models.VendorPayment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	collection, ok := vendorCollections()[payment.VendorType]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Unknown vendor type: " + payment.VendorType})
		return
	}

	if payment.Date.IsZero() {
		payment.Date = time.Now()
	}
	payment.CreatedAt = time.Now()
	payment.UpdatedAt = payment.CreatedAt

	result, err := config.VendorPaymentCollection.InsertOne(context.TODO(), payment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create vendor payment"})
		return
	}
	payment.ID = result.InsertedID.(primitive.ObjectID)

	delta := payment.BalanceDelta()
	if delta != 0 {
		shiftVendorOutstanding(collection, payment.VendorID, delta)
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": payment})
}

func DeleteVendorPayment(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid payment ID"})
		return
	}

	var payment models.VendorPayment
	err = config.VendorPaymentCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&payment)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Vendor payment not found"})
		return
	}

	_, err = config.VendorPaymentCollection.DeleteOne(context.TODO(), bson.M{"_id": objID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete vendor payment"})
		return
	}

	if collection, ok := vendorCollections()[payment.VendorType]; ok {
		delta := -payment.BalanceDelta()
		if delta != 0 {
			shiftVendorOutstanding(collection, payment.VendorID, delta)
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{}})
}

func shiftVendorOutstanding(collection *mongo.Collection, vendorID primitive.ObjectID, delta float64) {
	collection.UpdateByID(context.TODO(), vendorID, bson.M{
		"$inc": bson.M{"outstandingBalance": delta},
		"$set": bson.M{"updatedAt": time.Now()},
	})
}

// GetOutstandingBalances lists every vendor carrying a non-zero balance,
// across all three vendor kinds.
func GetOutstandingBalances(c *gin.Context) {
	type row struct {
		VendorID   primitive.ObjectID `json:"vendorId"`
		VendorType string             `json:"vendorType"`
		Name       string             `json:"name"`
		Balance    float64            `json:"balance"`
	}
	rows := []row{}
	var total float64

	cursor, err := config.TransportVendorCollection.Find(context.TODO(),
		bson.M{"outstandingBalance": bson.M{"$ne": 0}})
	if err == nil {
		for cursor.Next(context.TODO()) {
			var vendor models.TransportVendor
			if err := cursor.Decode(&vendor); err == nil {
				rows = append(rows, row{vendor.ID, models.VendorKindTransport, vendor.Name, vendor.OutstandingBalance})
				total += vendor.OutstandingBalance
			}
		}
		cursor.Close(context.TODO())
	}

	cursor, err = config.LabourContractorCollection.Find(context.TODO(),
		bson.M{"outstandingBalance": bson.M{"$ne": 0}})
	if err == nil {
		for cursor.Next(context.TODO()) {
			var contractor models.LabourContractor
			if err := cursor.Decode(&contractor); err == nil {
				rows = append(rows, row{contractor.ID, models.VendorKindLabour, contractor.Name, contractor.OutstandingBalance})
				total += contractor.OutstandingBalance
			}
		}
		cursor.Close(context.TODO())
	}

	cursor, err = config.ExplosiveSupplierCollection.Find(context.TODO(),
		bson.M{"outstandingBalance": bson.M{"$ne": 0}})
	if err == nil {
		for cursor.Next(context.TODO()) {
			var supplier models.ExplosiveSupplier
			if err := cursor.Decode(&supplier); err == nil {
				rows = append(rows, row{supplier.ID, models.VendorKindExplosive, supplier.Name, supplier.OutstandingBalance})
				total += supplier.OutstandingBalance
			}
		}
		cursor.Close(context.TODO())
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(rows), "data": gin.H{
		"vendors": rows,
		"total":   total,
	}})
}
