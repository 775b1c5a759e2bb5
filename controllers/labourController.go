package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"quarrybackend/config"
	"quarrybackend/models"
	"quarrybackend/utils"
)

func GetLabours(c *gin.Context) {
	query := bson.M{}
	if search := c.Query("search"); search != "" {
		query["name"] = bson.M{"$regex": search, "$options": "i"}
	}
	if status := c.Query("status"); status != "" {
		query["status"] = status
	}
	if labourType := c.Query("labourType"); labourType != "" {
		query["labourType"] = labourType
	}

	cursor, err := config.LabourCollection.Find(context.TODO(), query,
		options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve labours"})
		return
	}
	defer cursor.Close(context.TODO())

	labours := []models.Labour{}
	if err = cursor.All(context.TODO(), &labours); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to decode labours"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(labours), "data": labours})
}

func AddLabour(c *gin.Context) {
	var labour models.Labour
	if err := c.ShouldBindJSON(&labour); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if labour.WageType == "" {
		labour.WageType = "Daily"
	}
	if labour.LabourType == "" {
		labour.LabourType = "Direct"
	}
	if labour.Status == "" {
		labour.Status = "Active"
	}
	labour.CreatedAt = time.Now()
	labour.UpdatedAt = labour.CreatedAt

	result, err := config.LabourCollection.InsertOne(context.TODO(), labour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create labour"})
		return
	}
	labour.ID = result.InsertedID.(primitive.ObjectID)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": labour})
}

func UpdateLabour(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid labour ID"})
		return
	}

	var labour models.Labour
	err = config.LabourCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&labour)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Labour not found"})
		return
	}

	if err := c.ShouldBindJSON(&labour); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	labour.ID = objID
	labour.UpdatedAt = time.Now()

	_, err = config.LabourCollection.ReplaceOne(context.TODO(), bson.M{"_id": objID}, labour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update labour"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": labour})
}

func DeleteLabour(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid labour ID"})
		return
	}

	result, err := config.LabourCollection.DeleteOne(context.TODO(), bson.M{"_id": objID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete labour"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Labour not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{}})
}

func GetAttendance(c *gin.Context) {
	query := bson.M{}
	if start, end, ok := parseDay(c.Query("date")); ok {
		query["date"] = bson.M{"$gte": start, "$lte": end}
	}
	if labour := c.Query("labour"); labour != "" {
		if labourID, err := primitive.ObjectIDFromHex(labour); err == nil {
			query["labour"] = labourID
		}
	}

	cursor, err := config.AttendanceCollection.Find(context.TODO(), query,
		options.Find().SetSort(bson.M{"date": -1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve attendance"})
		return
	}
	defer cursor.Close(context.TODO())

	records := []models.Attendance{}
	if err = cursor.All(context.TODO(), &records); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to decode attendance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(records), "data": records})
}

type markAttendanceRequest struct {
	Date    time.Time `json:"date" binding:"required"`
	Records []struct {
		Labour        primitive.ObjectID `json:"labour" binding:"required"`
		Status        string             `json:"status" binding:"required"`
		OvertimeHours float64            `json:"overtimeHours"`
		Remarks       string             `json:"remarks"`
	} `json:"records" binding:"required"`
}

// MarkAttendance upserts one record per labour for the given day. The
// unique (labour, date) index keeps repeated submissions from duplicating.
func MarkAttendance(c *gin.Context) {
	var req markAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	day := utils.AttendanceDay(req.Date)
	saved := 0
	for _, record := range req.Records {
		filter := bson.M{"labour": record.Labour, "date": day}
		update := bson.M{
			"$set": bson.M{
				"status":        record.Status,
				"overtimeHours": record.OvertimeHours,
				"remarks":       record.Remarks,
				"updatedAt":     time.Now(),
			},
			"$setOnInsert": bson.M{
				"labour":    record.Labour,
				"date":      day,
				"isPaid":    false,
				"createdAt": time.Now(),
			},
		}
		_, err := config.AttendanceCollection.UpdateOne(context.TODO(), filter, update,
			options.Update().SetUpsert(true))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save attendance"})
			return
		}
		saved++
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": saved, "data": gin.H{"date": day}})
}

func GetAdvances(c *gin.Context) {
	query := bson.M{}
	if labour := c.Query("labour"); labour != "" {
		if labourID, err := primitive.ObjectIDFromHex(labour); err == nil {
			query["labour"] = labourID
		}
	}
	if start, end, ok := parseDateRange(c.Query("startDate"), c.Query("endDate")); ok {
		query["date"] = bson.M{"$gte": start, "$lte": end}
	}

	cursor, err := config.AdvanceCollection.Find(context.TODO(), query,
		options.Find().SetSort(bson.M{"date": -1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve advances"})
		return
	}
	defer cursor.Close(context.TODO())

	advances := []models.Advance{}
	if err = cursor.All(context.TODO(), &advances); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to decode advances"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(advances), "data": advances})
}

func AddAdvance(c *gin.Context) {
	var advance models.Advance
	if err := c.ShouldBindJSON(&advance); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if advance.Date.IsZero() {
		advance.Date = time.Now()
	}
	if advance.PaymentMode == "" {
		advance.PaymentMode = "Cash"
	}
	advance.CreatedAt = time.Now()
	advance.UpdatedAt = advance.CreatedAt

	result, err := config.AdvanceCollection.InsertOne(context.TODO(), advance)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create advance"})
		return
	}
	advance.ID = result.InsertedID.(primitive.ObjectID)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": advance})
}

func DeleteAdvance(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid advance ID"})
		return
	}

	result, err := config.AdvanceCollection.DeleteOne(context.TODO(), bson.M{"_id": objID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete advance"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Advance not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{}})
}

func parseMonthYear(c *gin.Context) (int, time.Month, bool) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, time.Month(month), true
}

type monthFigures struct {
	presentDays int
	halfDays    int
	otHours     float64
}

// collectMonthAttendance reduces the month's unpaid attendance to per-labour
// counters.
func collectMonthAttendance(start, end time.Time) (map[primitive.ObjectID]monthFigures, error) {
	cursor, err := config.AttendanceCollection.Find(context.TODO(), bson.M{
		"date":   bson.M{"$gte": start, "$lte": end},
		"isPaid": false,
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.TODO())

	figures := map[primitive.ObjectID]monthFigures{}
	for cursor.Next(context.TODO()) {
		var record models.Attendance
		if err := cursor.Decode(&record); err != nil {
			continue
		}
		f := figures[record.Labour]
		switch record.Status {
		case "Present":
			f.presentDays++
		case "Half Day":
			f.halfDays++
		}
		f.otHours += record.OvertimeHours
		figures[record.Labour] = f
	}
	return figures, nil
}

func collectMonthAdvances(start, end time.Time) (map[primitive.ObjectID]float64, error) {
	cursor, err := config.AdvanceCollection.Find(context.TODO(), bson.M{
		"date": bson.M{"$gte": start, "$lte": end},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.TODO())

	totals := map[primitive.ObjectID]float64{}
	for cursor.Next(context.TODO()) {
		var advance models.Advance
		if err := cursor.Decode(&advance); err != nil {
			continue
		}
		totals[advance.Labour] += advance.Amount
	}
	return totals, nil
}

// GetWagesSummary computes the month's payroll: direct labours one row each,
// vendor labours rolled up under their contractor.
func GetWagesSummary(c *gin.Context) {
	year, month, ok := parseMonthYear(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "month and year are required"})
		return
	}
	start, end := utils.MonthRange(year, month)
	daysInMonth := utils.DaysInMonth(year, month)

	attendance, err := collectMonthAttendance(start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve attendance"})
		return
	}
	advances, err := collectMonthAdvances(start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve advances"})
		return
	}

	cursor, err := config.LabourCollection.Find(context.TODO(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve labours"})
		return
	}
	defer cursor.Close(context.TODO())

	direct := []gin.H{}
	vendorGroups := map[primitive.ObjectID]gin.H{}
	vendorOrder := []primitive.ObjectID{}

	for cursor.Next(context.TODO()) {
		var labour models.Labour
		if err := cursor.Decode(&labour); err != nil {
			continue
		}
		f, present := attendance[labour.ID]
		if !present {
			continue
		}
		figures := models.CalcWages(labour.Wage, labour.WageType,
			f.presentDays, f.halfDays, f.otHours, daysInMonth, advances[labour.ID])

		row := gin.H{
			"labourId":      labour.ID,
			"name":          labour.Name,
			"wageType":      labour.WageType,
			"presentDays":   f.presentDays,
			"halfDays":      f.halfDays,
			"totalWorkDays": figures.TotalWorkDays,
			"overtimeHours": f.otHours,
			"totalWages":    utils.Round2(figures.TotalWages),
			"otAmount":      utils.Round2(figures.OtAmount),
			"totalAdvance":  utils.Round2(figures.TotalAdvance),
			"netPayable":    utils.Round2(figures.NetPayable),
		}

		if labour.LabourType == "Vendor" && !labour.Contractor.IsZero() {
			group, exists := vendorGroups[labour.Contractor]
			if !exists {
				name := ""
				var contractor models.LabourContractor
				if err := config.LabourContractorCollection.FindOne(context.TODO(),
					bson.M{"_id": labour.Contractor}).Decode(&contractor); err == nil {
					name = contractor.Name
				}
				group = gin.H{
					"contractorId":  labour.Contractor,
					"name":          name,
					"labourCount":   0,
					"totalWorkDays": 0.0,
					"totalWages":    0.0,
					"otAmount":      0.0,
					"totalAdvance":  0.0,
					"netPayable":    0.0,
				}
				vendorOrder = append(vendorOrder, labour.Contractor)
			}
			group["labourCount"] = group["labourCount"].(int) + 1
			group["totalWorkDays"] = group["totalWorkDays"].(float64) + figures.TotalWorkDays
			group["totalWages"] = utils.Round2(group["totalWages"].(float64) + figures.TotalWages)
			group["otAmount"] = utils.Round2(group["otAmount"].(float64) + figures.OtAmount)
			group["totalAdvance"] = utils.Round2(group["totalAdvance"].(float64) + figures.TotalAdvance)
			group["netPayable"] = utils.Round2(group["netPayable"].(float64) + figures.NetPayable)
			vendorGroups[labour.Contractor] = group
		} else {
			direct = append(direct, row)
		}
	}

	contractors := []gin.H{}
	for _, id := range vendorOrder {
		contractors = append(contractors, vendorGroups[id])
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
		"month":       int(month),
		"year":        year,
		"daysInMonth": daysInMonth,
		"labours":     direct,
		"contractors": contractors,
	}})
}

// GetLabourReport returns one labour with its attendance and advance history
// for the requested month, or all time when no month is given.
func GetLabourReport(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid labour ID"})
		return
	}

	var labour models.Labour
	err = config.LabourCollection.FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&labour)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Labour not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve labour"})
		}
		return
	}

	attendanceQuery := bson.M{"labour": objID}
	advanceQuery := bson.M{"labour": objID}
	if year, month, ok := parseMonthYear(c); ok {
		start, end := utils.MonthRange(year, month)
		attendanceQuery["date"] = bson.M{"$gte": start, "$lte": end}
		advanceQuery["date"] = bson.M{"$gte": start, "$lte": end}
	}

	attendance := []models.Attendance{}
	cursor, err := config.AttendanceCollection.Find(context.TODO(), attendanceQuery,
		options.Find().SetSort(bson.M{"date": 1}))
	if err == nil {
		cursor.All(context.TODO(), &attendance)
	}

	advances := []models.Advance{}
	cursor, err = config.AdvanceCollection.Find(context.TODO(), advanceQuery,
		options.Find().SetSort(bson.M{"date": 1}))
	if err == nil {
		cursor.All(context.TODO(), &advances)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
		"labour":     labour,
		"attendance": attendance,
		"advances":   advances,
	}})
}

type markWagesPaidRequest struct {
	LabourID     primitive.ObjectID `json:"labourId,omitempty"`
	ContractorID primitive.ObjectID `json:"contractorId,omitempty"`
	Month        int                `json:"month" binding:"required"`
	Year         int                `json:"year" binding:"required"`
}

// MarkWagesPaid flags the month's attendance as settled, either for one
// labour or for every labour under a contractor.
func MarkWagesPaid(c *gin.Context) {
	var req markWagesPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if req.Month < 1 || req.Month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid month"})
		return
	}

	labourIDs := []primitive.ObjectID{}
	switch {
	case !req.LabourID.IsZero():
		labourIDs = append(labourIDs, req.LabourID)
	case !req.ContractorID.IsZero():
		cursor, err := config.LabourCollection.Find(context.TODO(),
			bson.M{"contractor": req.ContractorID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to retrieve labours"})
			return
		}
		defer cursor.Close(context.TODO())
		for cursor.Next(context.TODO()) {
			var labour models.Labour
			if err := cursor.Decode(&labour); err == nil {
				labourIDs = append(labourIDs, labour.ID)
			}
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "labourId or contractorId is required"})
		return
	}

	start, end := utils.MonthRange(req.Year, time.Month(req.Month))
	result, err := config.AttendanceCollection.UpdateMany(context.TODO(), bson.M{
		"labour": bson.M{"$in": labourIDs},
		"date":   bson.M{"$gte": start, "$lte": end},
	}, bson.M{"$set": bson.M{"isPaid": true, "updatedAt": time.Now()}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to mark wages paid"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": result.ModifiedCount, "data": gin.H{}})
}
