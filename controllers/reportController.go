package controllers

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"quarrybackend/config"
	"quarrybackend/models"
	"quarrybackend/utils"
)

type dayBookEntry struct {
	Time        time.Time `json:"time"`
	Kind        string    `json:"kind"` // sale, payment, income, expense, vendorPayment
	Description string    `json:"description"`
	Income      float64   `json:"income"`
	Expense     float64   `json:"expense"`
}

// GetDayBook merges the day's money movements into one time-ordered ledger
// with running totals. Credit rows stay out: nothing moved on the day.
func GetDayBook(c *gin.Context) {
	start, end, ok := parseDay(c.Query("date"))
	if !ok {
		start, end = utils.DayRange(time.Now())
	}
	dateFilter := bson.M{"$gte": start, "$lte": end}
	entries := []dayBookEntry{}

	cursor, err := config.SalesCollection.Find(context.TODO(), bson.M{
		"invoiceDate": dateFilter,
		"paymentType": "Cash",
		"status":      "active",
	})
	if err == nil {
		for cursor.Next(context.TODO()) {
			var sale models.Sales
			if err := cursor.Decode(&sale); err != nil {
				continue
			}
			entries = append(entries, dayBookEntry{
				Time:        sale.InvoiceDate,
				Kind:        "sale",
				Description: "Cash sale " + sale.InvoiceNumber,
				Income:      sale.GrandTotal,
			})
		}
		cursor.Close(context.TODO())
	}

	cursor, err = config.PaymentCollection.Find(context.TODO(), bson.M{"paymentDate": dateFilter})
	if err == nil {
		for cursor.Next(context.TODO()) {
			var payment models.Payment
			if err := cursor.Decode(&payment); err != nil {
				continue
			}
			entries = append(entries, dayBookEntry{
				Time:        payment.PaymentDate,
				Kind:        "payment",
				Description: "Payment received (" + payment.PaymentMode + ")",
				Income:      payment.Amount,
			})
		}
		cursor.Close(context.TODO())
	}

	// Stone Sales income rows mirror the cash sales and payments already
	// collected above; counting them again would double the day's income.
	cursor, err = config.IncomeCollection.Find(context.TODO(), bson.M{
		"date":   dateFilter,
		"source": bson.M{"$ne": "Stone Sales"},
	})
	if err == nil {
		for cursor.Next(context.TODO()) {
			var income models.Income
			if err := cursor.Decode(&income); err != nil {
				continue
			}
			entries = append(entries, dayBookEntry{
				Time:        income.Date,
				Kind:        "income",
				Description: income.Source,
				Income:      income.Amount,
			})
		}
		cursor.Close(context.TODO())
	}

	cursor, err = config.ExpenseCollection.Find(context.TODO(), bson.M{
		"date":        dateFilter,
		"paymentMode": bson.M{"$ne": "Credit"},
	})
	if err == nil {
		for cursor.Next(context.TODO()) {
			var expense models.Expense
			if err := cursor.Decode(&expense); err != nil {
				continue
			}
			description := expense.Category
			if expense.Description != "" {
				description += ": " + expense.Description
			}
			entries = append(entries, dayBookEntry{
				Time:        expense.Date,
				Kind:        "expense",
				Description: description,
				Expense:     expense.Amount,
			})
		}
		cursor.Close(context.TODO())
	}

	cursor, err = config.VendorPaymentCollection.Find(context.TODO(), bson.M{"date": dateFilter})
	if err == nil {
		for cursor.Next(context.TODO()) {
			var payment models.VendorPayment
			if err := cursor.Decode(&payment); err != nil {
				continue
			}
			entries = append(entries, dayBookEntry{
				Time:        payment.Date,
				Kind:        "vendorPayment",
				Description: "Vendor payment: " + payment.VendorName,
				Expense:     payment.PaidAmount,
			})
		}
		cursor.Close(context.TODO())
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Time.Before(entries[j].Time) })

	var totalIncome, totalExpense float64
	rows := make([]gin.H, 0, len(entries))
	for _, entry := range entries {
		totalIncome += entry.Income
		totalExpense += entry.Expense
		rows = append(rows, gin.H{
			"time":           entry.Time,
			"kind":           entry.Kind,
			"description":    entry.Description,
			"income":         entry.Income,
			"expense":        entry.Expense,
			"runningIncome":  utils.Round2(totalIncome),
			"runningExpense": utils.Round2(totalExpense),
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
		"date":         start,
		"entries":      rows,
		"totalIncome":  utils.Round2(totalIncome),
		"totalExpense": utils.Round2(totalExpense),
		"netCash":      utils.Round2(totalIncome - totalExpense),
	}})
}

// cashTotalsBefore sums all cash movements strictly before t.
func cashTotalsBefore(t time.Time) (income, expense float64) {
	before := bson.M{"$lt": t}

	cursor, err := config.SalesCollection.Find(context.TODO(), bson.M{
		"invoiceDate": before, "paymentType": "Cash", "status": "active",
	})
	if err == nil {
		for cursor.Next(context.TODO()) {
			var sale models.Sales
			if cursor.Decode(&sale) == nil {
				income += sale.GrandTotal
			}
		}
		cursor.Close(context.TODO())
	}

	cursor, err = config.PaymentCollection.Find(context.TODO(), bson.M{"paymentDate": before})
	if err == nil {
		for cursor.Next(context.TODO()) {
			var payment models.Payment
			if cursor.Decode(&payment) == nil {
				income += payment.Amount
			}
		}
		cursor.Close(context.TODO())
	}

	cursor, err = config.IncomeCollection.Find(context.TODO(), bson.M{
		"date": before, "source": bson.M{"$ne": "Stone Sales"},
	})
	if err == nil {
		for cursor.Next(context.TODO()) {
			var other models.Income
			if cursor.Decode(&other) == nil {
				income += other.Amount
			}
		}
		cursor.Close(context.TODO())
	}

	cursor, err = config.ExpenseCollection.Find(context.TODO(), bson.M{
		"date": before, "paymentMode": bson.M{"$ne": "Credit"},
	})
	if err == nil {
		for cursor.Next(context.TODO()) {
			var exp models.Expense
			if cursor.Decode(&exp) == nil {
				expense += exp.Amount
			}
		}
		cursor.Close(context.TODO())
	}

	cursor, err = config.VendorPaymentCollection.Find(context.TODO(), bson.M{"date": before})
	if err == nil {
		for cursor.Next(context.TODO()) {
			var payment models.VendorPayment
			if cursor.Decode(&payment) == nil {
				expense += payment.PaidAmount
			}
		}
		cursor.Close(context.TODO())
	}

	return income, expense
}

// GetCashFlow reports the period's receipts and payments with opening and
// closing balances derived from full history.
func GetCashFlow(c *gin.Context) {
	start, end, ok := parseDateRange(c.Query("startDate"), c.Query("endDate"))
	if !ok {
		now := time.Now()
		start, end = utils.MonthRange(now.Year(), now.Month())
	}

	openIncome, openExpense := cashTotalsBefore(start)
	opening := openIncome - openExpense

	dateFilter := bson.M{"$gte": start, "$lte": end}
	var receipts, payments float64
	receiptRows := []gin.H{}
	paymentRows := []gin.H{}

	cursor, err := config.SalesCollection.Find(context.TODO(), bson.M{
		"invoiceDate": dateFilter, "paymentType": "Cash", "status": "active",
	})
	if err == nil {
		for cursor.Next(context.TODO()) {
			var sale models.Sales
			if cursor.Decode(&sale) != nil {
				continue
			}
			receipts += sale.GrandTotal
			receiptRows = append(receiptRows, gin.H{
				"date": sale.InvoiceDate, "description": "Cash sale " + sale.InvoiceNumber, "amount": sale.GrandTotal,
			})
		}
		cursor.Close(context.TODO())
	}

	cursor, err = config.PaymentCollection.Find(context.TODO(), bson.M{"paymentDate": dateFilter})
	if err == nil {
		for cursor.Next(context.TODO()) {
			var payment models.Payment
			if cursor.Decode(&payment) != nil {
				continue
			}
			receipts += payment.Amount
			receiptRows = append(receiptRows, gin.H{
				"date": payment.PaymentDate, "description": "Customer payment (" + payment.PaymentMode + ")", "amount": payment.Amount,
			})
		}
		cursor.Close(context.TODO())
	}

	cursor, err = config.IncomeCollection.Find(context.TODO(), bson.M{
		"date": dateFilter, "source": bson.M{"$ne": "Stone Sales"},
	})
	if err == nil {
		for cursor.Next(context.TODO()) {
			var income models.Income
			if cursor.Decode(&income) != nil {
				continue
			}
			receipts += income.Amount
			receiptRows = append(receiptRows, gin.H{
				"date": income.Date, "description": income.Source, "amount": income.Amount,
			})
		}
		cursor.Close(context.TODO())
	}

	cursor, err = config.ExpenseCollection.Find(context.TODO(), bson.M{
		"date": dateFilter, "paymentMode": bson.M{"$ne": "Credit"},
	})
	if err == nil {
		for cursor.Next(context.TODO()) {
			var expense models.Expense
			if cursor.Decode(&expense) != nil {
				continue
			}
			payments += expense.Amount
			paymentRows = append(paymentRows, gin.H{
				"date": expense.Date, "description": expense.Category, "amount": expense.Amount,
			})
		}
		cursor.Close(context.TODO())
	}

	cursor, err = config.VendorPaymentCollection.Find(context.TODO(), bson.M{"date": dateFilter})
	if err == nil {
		for cursor.Next(context.TODO()) {
			var payment models.VendorPayment
			if cursor.Decode(&payment) != nil {
				continue
			}
			payments += payment.PaidAmount
			paymentRows = append(paymentRows, gin.H{
				"date": payment.Date, "description": "Vendor payment: " + payment.VendorName, "amount": payment.PaidAmount,
			})
		}
		cursor.Close(context.TODO())
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
		"startDate":      start,
		"endDate":        end,
		"openingBalance": utils.Round2(opening),
		"receipts":       receiptRows,
		"payments":       paymentRows,
		"totalReceipts":  utils.Round2(receipts),
		"totalPayments":  utils.Round2(payments),
		"closingBalance": utils.Round2(opening + receipts - payments),
	}})
}

// GetProfitLoss compares accrued revenue against expenses for a period.
// Revenue counts active sales at full invoice value regardless of payment.
func GetProfitLoss(c *gin.Context) {
	start, end, ok := parseDateRange(c.Query("startDate"), c.Query("endDate"))
	if !ok {
		now := time.Now()
		start, end = utils.MonthRange(now.Year(), now.Month())
	}
	dateFilter := bson.M{"$gte": start, "$lte": end}

	var salesTotal, otherIncome float64
	cursor, err := config.SalesCollection.Find(context.TODO(), bson.M{
		"invoiceDate": dateFilter, "status": "active",
	})
	if err == nil {
		for cursor.Next(context.TODO()) {
			var sale models.Sales
			if cursor.Decode(&sale) == nil {
				salesTotal += sale.GrandTotal
			}
		}
		cursor.Close(context.TODO())
	}

	cursor, err = config.IncomeCollection.Find(context.TODO(), bson.M{
		"date": dateFilter, "source": bson.M{"$ne": "Stone Sales"},
	})
	if err == nil {
		for cursor.Next(context.TODO()) {
			var income models.Income
			if cursor.Decode(&income) == nil {
				otherIncome += income.Amount
			}
		}
		cursor.Close(context.TODO())
	}

	expenseByCategory := map[string]float64{}
	var totalExpense float64
	cursor, err = config.ExpenseCollection.Find(context.TODO(), bson.M{"date": dateFilter})
	if err == nil {
		for cursor.Next(context.TODO()) {
			var expense models.Expense
			if cursor.Decode(&expense) != nil {
				continue
			}
			expenseByCategory[expense.Category] += expense.Amount
			totalExpense += expense.Amount
		}
		cursor.Close(context.TODO())
	}

	vendorInvoicesByType := map[string]float64{}
	var totalVendorInvoices float64
	cursor, err = config.VendorPaymentCollection.Find(context.TODO(), bson.M{"date": dateFilter})
	if err == nil {
		for cursor.Next(context.TODO()) {
			var payment models.VendorPayment
			if cursor.Decode(&payment) != nil {
				continue
			}
			vendorInvoicesByType[payment.VendorType] += payment.InvoiceAmount
			totalVendorInvoices += payment.InvoiceAmount
		}
		cursor.Close(context.TODO())
	}

	totalRevenue := salesTotal + otherIncome
	totalCost := totalExpense + totalVendorInvoices

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
		"startDate":            start,
		"endDate":              end,
		"salesRevenue":         utils.Round2(salesTotal),
		"otherIncome":          utils.Round2(otherIncome),
		"totalRevenue":         utils.Round2(totalRevenue),
		"expensesByCategory":   expenseByCategory,
		"vendorInvoicesByType": vendorInvoicesByType,
		"totalExpense":         utils.Round2(totalCost),
		"netProfit":            utils.Round2(totalRevenue - totalCost),
	}})
}

// GetMonthlySummary breaks a year into per-month sales and expense totals.
func GetMonthlySummary(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		year = time.Now().Year()
	}

	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0).Add(-time.Nanosecond)

	salesByMonth := make([]float64, 13)
	expenseByMonth := make([]float64, 13)

	cursor, err := config.SalesCollection.Find(context.TODO(), bson.M{
		"invoiceDate": bson.M{"$gte": yearStart, "$lte": yearEnd},
		"status":      "active",
	})
	if err == nil {
		for cursor.Next(context.TODO()) {
			var sale models.Sales
			if cursor.Decode(&sale) == nil {
				salesByMonth[int(sale.InvoiceDate.Month())] += sale.GrandTotal
			}
		}
		cursor.Close(context.TODO())
	}

	cursor, err = config.ExpenseCollection.Find(context.TODO(), bson.M{
		"date": bson.M{"$gte": yearStart, "$lte": yearEnd},
	})
	if err == nil {
		for cursor.Next(context.TODO()) {
			var expense models.Expense
			if cursor.Decode(&expense) == nil {
				expenseByMonth[int(expense.Date.Month())] += expense.Amount
			}
		}
		cursor.Close(context.TODO())
	}

	months := []gin.H{}
	for m := 1; m <= 12; m++ {
		months = append(months, gin.H{
			"month":    m,
			"name":     time.Month(m).String(),
			"sales":    utils.Round2(salesByMonth[m]),
			"expenses": utils.Round2(expenseByMonth[m]),
			"net":      utils.Round2(salesByMonth[m] - expenseByMonth[m]),
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
		"year":   year,
		"months": months,
	}})
}

type vehicleCostBucket struct {
	VehicleID       primitive.ObjectID `json:"vehicleId,omitempty"`
	Name            string             `json:"name"`
	FuelCost        float64            `json:"fuelCost"`
	MaintenanceCost float64            `json:"maintenanceCost"`
	OperatorWages   float64            `json:"operatorWages"`
	OtherCosts      float64            `json:"otherCosts"`
	TotalCost       float64            `json:"totalCost"`
}

// GetVehicleCostReport buckets expenses per vehicle. New rows join on
// vehicleId; legacy rows fall back to matching the stored free-text label
// against each vehicle's display name or plate. Whatever still doesn't
// match lands in the External / Unmatched bucket.
func GetVehicleCostReport(c *gin.Context) {
	query := bson.M{}
	if start, end, ok := parseDateRange(c.Query("startDate"), c.Query("endDate")); ok {
		query["date"] = bson.M{"$gte": start, "$lte": end}
	}

	vehicles := []models.Vehicle{}
	cursor, err := config.VehicleCollection.Find(context.TODO(), bson.M{})
	if err == nil {
		cursor.All(context.TODO(), &vehicles)
	}

	buckets := map[primitive.ObjectID]*vehicleCostBucket{}
	order := []primitive.ObjectID{}
	for _, vehicle := range vehicles {
		buckets[vehicle.ID] = &vehicleCostBucket{VehicleID: vehicle.ID, Name: vehicle.DisplayName()}
		order = append(order, vehicle.ID)
	}
	unmatched := &vehicleCostBucket{Name: "External / Unmatched"}

	matchLegacy := func(label string) *vehicleCostBucket {
		if label == "" {
			return nil
		}
		lower := strings.ToLower(label)
		for _, vehicle := range vehicles {
			if strings.EqualFold(label, vehicle.DisplayName()) {
				return buckets[vehicle.ID]
			}
			if plate := vehicle.PlateNumber(); plate != "" && strings.Contains(lower, strings.ToLower(plate)) {
				return buckets[vehicle.ID]
			}
			if vehicle.Name != "" && strings.Contains(lower, strings.ToLower(vehicle.Name)) {
				return buckets[vehicle.ID]
			}
		}
		return nil
	}

	cursor, err = config.ExpenseCollection.Find(context.TODO(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve expenses"})
		return
	}
	defer cursor.Close(context.TODO())

	for cursor.Next(context.TODO()) {
		var expense models.Expense
		if err := cursor.Decode(&expense); err != nil {
			continue
		}
		if expense.VehicleID.IsZero() && expense.VehicleOrMachine == "" {
			continue
		}

		bucket := buckets[expense.VehicleID]
		if bucket == nil {
			bucket = matchLegacy(expense.VehicleOrMachine)
		}
		if bucket == nil {
			bucket = unmatched
		}

		switch expense.Category {
		case models.CategoryDiesel:
			bucket.FuelCost += expense.Amount
		case models.CategoryMaintenance:
			bucket.MaintenanceCost += expense.Amount
		case models.CategoryLabourWages:
			bucket.OperatorWages += expense.Amount
		default:
			bucket.OtherCosts += expense.Amount
		}
		bucket.TotalCost += expense.Amount
	}

	rows := []vehicleCostBucket{}
	for _, id := range order {
		bucket := buckets[id]
		bucket.FuelCost = utils.Round2(bucket.FuelCost)
		bucket.MaintenanceCost = utils.Round2(bucket.MaintenanceCost)
		bucket.OperatorWages = utils.Round2(bucket.OperatorWages)
		bucket.OtherCosts = utils.Round2(bucket.OtherCosts)
		bucket.TotalCost = utils.Round2(bucket.TotalCost)
		rows = append(rows, *bucket)
	}
	if unmatched.TotalCost != 0 {
		unmatched.FuelCost = utils.Round2(unmatched.FuelCost)
		unmatched.MaintenanceCost = utils.Round2(unmatched.MaintenanceCost)
		unmatched.OperatorWages = utils.Round2(unmatched.OperatorWages)
		unmatched.OtherCosts = utils.Round2(unmatched.OtherCosts)
		unmatched.TotalCost = utils.Round2(unmatched.TotalCost)
		rows = append(rows, *unmatched)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(rows), "data": rows})
}

// GetMaintenanceHistory lists machine maintenance expenses, optionally for
// one vehicle.
func GetMaintenanceHistory(c *gin.Context) {
	query := bson.M{"category": models.CategoryMaintenance}
	if vehicle := c.Query("vehicleId"); vehicle != "" {
		if vehicleID, err := primitive.ObjectIDFromHex(vehicle); err == nil {
			query["vehicleId"] = vehicleID
		}
	}
	if start, end, ok := parseDateRange(c.Query("startDate"), c.Query("endDate")); ok {
		query["date"] = bson.M{"$gte": start, "$lte": end}
	}

	cursor, err := config.ExpenseCollection.Find(context.TODO(), query,
		options.Find().SetSort(bson.M{"date": -1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve maintenance history"})
		return
	}
	defer cursor.Close(context.TODO())

	expenses := []models.Expense{}
	if err = cursor.All(context.TODO(), &expenses); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to decode maintenance history"})
		return
	}

	var total float64
	for _, expense := range expenses {
		total += expense.Amount
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(expenses), "total": utils.Round2(total), "data": expenses})
}

// GetFuelTracking lists diesel expenses with quantity and rate detail.
func GetFuelTracking(c *gin.Context) {
	query := bson.M{"category": models.CategoryDiesel}
	if vehicle := c.Query("vehicleId"); vehicle != "" {
		if vehicleID, err := primitive.ObjectIDFromHex(vehicle); err == nil {
			query["vehicleId"] = vehicleID
		}
	}
	if start, end, ok := parseDateRange(c.Query("startDate"), c.Query("endDate")); ok {
		query["date"] = bson.M{"$gte": start, "$lte": end}
	}

	cursor, err := config.ExpenseCollection.Find(context.TODO(), query,
		options.Find().SetSort(bson.M{"date": -1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve fuel records"})
		return
	}
	defer cursor.Close(context.TODO())

	expenses := []models.Expense{}
	if err = cursor.All(context.TODO(), &expenses); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to decode fuel records"})
		return
	}

	var totalAmount, totalQuantity float64
	for _, expense := range expenses {
		totalAmount += expense.Amount
		totalQuantity += expense.Quantity
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(expenses), "data": gin.H{
		"records":       expenses,
		"totalAmount":   utils.Round2(totalAmount),
		"totalQuantity": utils.Round2(totalQuantity),
	}})
}
