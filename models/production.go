package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductionMachine struct {
	MachineID    primitive.ObjectID `bson:"machineId" json:"machineId" binding:"required"`
	WorkingHours float64            `bson:"workingHours" json:"workingHours"`
	DieselUsed   float64            `bson:"dieselUsed" json:"dieselUsed"`
}

type ProductionDetail struct {
	StoneType          primitive.ObjectID `bson:"stoneType" json:"stoneType" binding:"required"`
	Quantity           float64            `bson:"quantity" json:"quantity"`
	Unit               string             `bson:"unit" json:"unit"`
	NoOfLoads          float64            `bson:"noOfLoads,omitempty" json:"noOfLoads,omitempty"`
	CrusherOutput      string             `bson:"crusherOutput,omitempty" json:"crusherOutput,omitempty"`
	OpeningStock       float64            `bson:"openingStock" json:"openingStock"`
	DispatchedQuantity float64            `bson:"dispatchedQuantity" json:"dispatchedQuantity"`
	ClosingStock       float64            `bson:"closingStock" json:"closingStock"`
}

// ProductionWorker names a labourer or operator on the shift roster.
// Rows with a known labour id get attendance marked automatically.
type ProductionWorker struct {
	LabourID primitive.ObjectID `bson:"labourId,omitempty" json:"labourId,omitempty"`
	Name     string             `bson:"name" json:"name"`
}

type ProductionRemarks struct {
	Breakdown    bool   `bson:"breakdown" json:"breakdown"`
	RainDelay    bool   `bson:"rainDelay" json:"rainDelay"`
	PowerCut     bool   `bson:"powerCut" json:"powerCut"`
	BlastingDone bool   `bson:"blastingDone" json:"blastingDone"`
	OtherRemarks string `bson:"otherRemarks,omitempty" json:"otherRemarks,omitempty"`
}

// Production is a shift record. A save fans out into StoneType stock,
// Attendance upserts, Vehicle HMR bumps and regenerated Expense rows.
type Production struct {
	ID                primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	Date              time.Time           `bson:"date" json:"date"`
	Shift             string              `bson:"shift" json:"shift" binding:"required"` // Shift 1, Shift 2, Full Day
	SiteName          string              `bson:"siteName,omitempty" json:"siteName,omitempty"`
	SupervisorName    string              `bson:"supervisorName,omitempty" json:"supervisorName,omitempty"`
	Machines          []ProductionMachine `bson:"machines" json:"machines"`
	ProductionDetails []ProductionDetail  `bson:"productionDetails" json:"productionDetails"`
	LabourDetails     []ProductionWorker  `bson:"labourDetails" json:"labourDetails"`
	OperatorDetails   []ProductionWorker  `bson:"operatorDetails" json:"operatorDetails"`
	NoOfWorkers       int                 `bson:"noOfWorkers,omitempty" json:"noOfWorkers,omitempty"`
	OperatorName      string              `bson:"operatorName,omitempty" json:"operatorName,omitempty"`
	ShiftWage         float64             `bson:"shiftWage" json:"shiftWage"`
	Remarks           ProductionRemarks   `bson:"remarks" json:"remarks"`
	CreatedBy         string              `bson:"createdBy" json:"createdBy"`
	CreatedAt         time.Time           `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt         time.Time           `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// WorkerNames lists every named person on the shift, labourers first.
func (p Production) WorkerNames() []string {
	var names []string
	for _, w := range p.LabourDetails {
		if w.Name != "" {
			names = append(names, w.Name)
		}
	}
	for _, w := range p.OperatorDetails {
		if w.Name != "" {
			names = append(names, w.Name)
		}
	}
	return names
}
