package controllers

import (
	"context"
	"fmt"
	"log"
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

func GetSales(c *gin.Context) {
	query := bson.M{"status": "active"}

	if start, end, ok := parseDateRange(c.Query("startDate"), c.Query("endDate")); ok {
		query["invoiceDate"] = bson.M{"$gte": start, "$lte": end}
	}
	if customer := c.Query("customer"); customer != "" {
		if custID, err := primitive.ObjectIDFromHex(customer); err == nil {
			query["customer"] = custID
		}
	}
	if pt := c.Query("paymentType"); pt != "" {
		query["paymentType"] = pt
	}
	if ps := c.Query("paymentStatus"); ps != "" {
		query["paymentStatus"] = ps
	}

	cursor, err := config.SalesCollection.Find(context.TODO(), query,
		options.Find().SetSort(bson.M{"invoiceDate": -1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve sales"})
		return
	}
	defer cursor.Close(context.TODO())

	sales := []models.Sales{}
	if err = cursor.All(context.TODO(), &sales); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to decode sales"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(sales), "data": sales})
}

func GetSale(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid sale ID"})
		return
	}

	var sale models.Sales
	err = config.SalesCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&sale)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Sale not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve sale"})
		}
		return
	}

	payCur, err := config.PaymentCollection.Find(context.TODO(), bson.M{"sales": objID},
		options.Find().SetSort(bson.M{"paymentDate": -1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve payments"})
		return
	}
	defer payCur.Close(context.TODO())

	payments := []models.Payment{}
	if err = payCur.All(context.TODO(), &payments); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to decode payments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": sale, "payments": payments})
}

func AddSale(c *gin.Context) {
	var sale models.Sales
	if err := c.ShouldBindJSON(&sale); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if len(sale.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please add at least one item"})
		return
	}

	sale.ApplyItemAmounts()
	if sale.PaymentType == "" {
		sale.PaymentType = "Cash"
	}
	sale.Status = "active"
	if sale.InvoiceDate.IsZero() {
		sale.InvoiceDate = time.Now()
	}
	sale.ApplyTotals()

	// Stock must cover every line before anything is written.
	if msg := checkStockAvailable(sale.Items); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
		return
	}

	if sale.PaymentType == "Credit" {
		if msg := checkCreditLimit(sale.Customer, sale.GrandTotal); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
			return
		}
	}

	if sale.InvoiceNumber == "" {
		count, err := config.SalesCollection.CountDocuments(context.TODO(), bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to generate invoice number"})
			return
		}
		sale.InvoiceNumber = models.FormatInvoiceNumber(time.Now(), count)
	}
	sale.CreatedAt = time.Now()
	sale.UpdatedAt = sale.CreatedAt

	result, err := config.SalesCollection.InsertOne(context.TODO(), sale)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create sale"})
		return
	}
	sale.ID = result.InsertedID.(primitive.ObjectID)

	syncSaleCreated(sale)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": sale})
}

func UpdateSale(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid sale ID"})
		return
	}

	var sale models.Sales
	err = config.SalesCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&sale)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Sale not found"})
		return
	}

	if err := c.ShouldBindJSON(&sale); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	sale.ID = objID
	sale.ApplyItemAmounts()
	sale.ApplyTotals()
	sale.UpdatedAt = time.Now()

	_, err = config.SalesCollection.ReplaceOne(context.TODO(), bson.M{"_id": objID}, sale)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update sale"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": sale})
}

// DeleteSale cancels the invoice. Stock is not restored; cancelled material
// is adjusted through a fresh production entry if it comes back.
func DeleteSale(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid sale ID"})
		return
	}

	result, err := config.SalesCollection.UpdateByID(context.TODO(), objID,
		bson.M{"$set": bson.M{"status": "cancelled", "updatedAt": time.Now()}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to cancel sale"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Sale not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Sale cancelled"})
}

// AddPayment records a receipt against a sale and rolls the paid amount
// into the invoice. Two separate writes; the payment stands even if the
// invoice update fails.
func AddPayment(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid sale ID"})
		return
	}

	var sale models.Sales
	err = config.SalesCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&sale)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Sale not found"})
		return
	}

	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	payment.Sales = objID
	payment.Customer = sale.Customer
	if payment.PaymentDate.IsZero() {
		payment.PaymentDate = time.Now()
	}
	if payment.PaymentMode == "" {
		payment.PaymentMode = "Cash"
	}
	payment.CreatedAt = time.Now()
	payment.UpdatedAt = payment.CreatedAt

	result, err := config.PaymentCollection.InsertOne(context.TODO(), payment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to record payment"})
		return
	}
	payment.ID = result.InsertedID.(primitive.ObjectID)

	sale.AmountPaid += payment.Amount
	sale.ApplyTotals()
	sale.UpdatedAt = time.Now()

	_, err = config.SalesCollection.ReplaceOne(context.TODO(), bson.M{"_id": objID}, sale)
	if err != nil {
		log.Printf("payment %s recorded but sale %s not updated: %v", payment.ID.Hex(), objID.Hex(), err)
	}

	recordSaleIncome(sale, payment.Amount)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": payment, "updatedSale": sale})
}

func GetPendingPayments(c *gin.Context) {
	cursor, err := config.SalesCollection.Find(context.TODO(), bson.M{
		"status":        "active",
		"paymentStatus": bson.M{"$in": []string{"Unpaid", "Partial"}},
	}, options.Find().SetSort(bson.M{"dueDate": 1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve pending sales"})
		return
	}
	defer cursor.Close(context.TODO())

	type pendingInvoice struct {
		ID            primitive.ObjectID `json:"id"`
		InvoiceNumber string             `json:"invoiceNumber"`
		InvoiceDate   time.Time          `json:"invoiceDate"`
		GrandTotal    float64            `json:"grandTotal"`
		AmountPaid    float64            `json:"amountPaid"`
		BalanceAmount float64            `json:"balanceAmount"`
		DueDate       *time.Time         `json:"dueDate,omitempty"`
		PaymentStatus string             `json:"paymentStatus"`
	}
	type customerPending struct {
		Customer     models.Customer  `json:"customer"`
		TotalSales   float64          `json:"totalSales"`
		TotalPaid    float64          `json:"totalPaid"`
		TotalBalance float64          `json:"totalBalance"`
		Invoices     []pendingInvoice `json:"invoices"`
	}

	grouped := map[primitive.ObjectID]*customerPending{}
	var order []primitive.ObjectID

	for cursor.Next(context.TODO()) {
		var sale models.Sales
		if err := cursor.Decode(&sale); err != nil {
			continue
		}

		entry, ok := grouped[sale.Customer]
		if !ok {
			var customer models.Customer
			if err := config.CustomerCollection.FindOne(context.TODO(),
				bson.M{"_id": sale.Customer}).Decode(&customer); err != nil {
				customer = models.Customer{ID: sale.Customer, Name: "Unknown"}
			}
			entry = &customerPending{Customer: customer}
			grouped[sale.Customer] = entry
			order = append(order, sale.Customer)
		}

		entry.TotalSales += sale.GrandTotal
		entry.TotalPaid += sale.AmountPaid
		entry.TotalBalance += sale.BalanceAmount
		entry.Invoices = append(entry.Invoices, pendingInvoice{
			ID:            sale.ID,
			InvoiceNumber: sale.InvoiceNumber,
			InvoiceDate:   sale.InvoiceDate,
			GrandTotal:    sale.GrandTotal,
			AmountPaid:    sale.AmountPaid,
			BalanceAmount: sale.BalanceAmount,
			DueDate:       sale.DueDate,
			PaymentStatus: sale.PaymentStatus,
		})
	}

	report := []customerPending{}
	totalPending := 0.0
	for _, id := range order {
		report = append(report, *grouped[id])
		totalPending += grouped[id].TotalBalance
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"totalPending": totalPending,
		"count":        len(report),
		"data":         report,
	})
}

// checkStockAvailable returns a rejection message when any line asks for
// more than its stone type has on hand.
func checkStockAvailable(items []models.SalesItem) string {
	for _, item := range items {
		if item.StoneType.IsZero() {
			continue
		}
		var stone models.StoneType
		err := config.StoneTypeCollection.FindOne(context.TODO(),
			bson.M{"_id": item.StoneType}).Decode(&stone)
		if err != nil {
			return "Stone type not found for item: " + item.Item
		}
		if item.Quantity > stone.CurrentStock {
			return fmt.Sprintf("Insufficient stock for %s: requested %.2f, available %.2f",
				stone.Name, item.Quantity, stone.CurrentStock)
		}
	}
	return ""
}

// checkCreditLimit rejects a credit sale that would push the customer's
// open balance past their limit. A zero limit means no limit.
func checkCreditLimit(customerID primitive.ObjectID, grandTotal float64) string {
	var customer models.Customer
	err := config.CustomerCollection.FindOne(context.TODO(),
		bson.M{"_id": customerID}).Decode(&customer)
	if err != nil {
		return "Customer not found"
	}
	if customer.CreditLimit <= 0 {
		return ""
	}

	cursor, err := config.SalesCollection.Find(context.TODO(), bson.M{
		"customer":      customerID,
		"status":        "active",
		"paymentStatus": bson.M{"$in": []string{"Unpaid", "Partial"}},
	})
	if err != nil {
		return ""
	}
	defer cursor.Close(context.TODO())

	outstanding := 0.0
	for cursor.Next(context.TODO()) {
		var sale models.Sales
		if err := cursor.Decode(&sale); err != nil {
			continue
		}
		outstanding += sale.BalanceAmount
	}

	if outstanding+grandTotal > customer.CreditLimit {
		return fmt.Sprintf("Credit limit exceeded: limit %.2f, outstanding %.2f, this invoice %.2f",
			customer.CreditLimit, outstanding, grandTotal)
	}
	return ""
}

// syncSaleCreated applies the side effects of a new invoice: dispatched
// quantities come off stone stock, and paid amounts land in the income
// ledger. Best effort; failures are logged, the invoice stands.
func syncSaleCreated(sale models.Sales) {
	for _, item := range sale.Items {
		if item.StoneType.IsZero() {
			continue
		}
		_, err := config.StoneTypeCollection.UpdateByID(context.TODO(), item.StoneType,
			bson.M{"$inc": bson.M{"currentStock": -item.Quantity}})
		if err != nil {
			log.Printf("sale %s: stock decrement for %s failed: %v",
				sale.ID.Hex(), item.StoneType.Hex(), err)
		}
	}

	if sale.AmountPaid > 0 {
		recordSaleIncome(sale, sale.AmountPaid)
	}
}

func recordSaleIncome(sale models.Sales, amount float64) {
	var customer models.Customer
	_ = config.CustomerCollection.FindOne(context.TODO(),
		bson.M{"_id": sale.Customer}).Decode(&customer)

	income := models.Income{
		Source:        "Stone Sales",
		Amount:        amount,
		Date:          time.Now(),
		CustomerName:  customer.Name,
		PaymentStatus: "Paid",
		Description:   "Invoice " + sale.InvoiceNumber,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if _, err := config.IncomeCollection.InsertOne(context.TODO(), income); err != nil {
		log.Printf("sale %s: income record failed: %v", sale.ID.Hex(), err)
	}
}
