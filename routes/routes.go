package routes

import (
	"quarrybackend/controllers"

	"github.com/gin-gonic/gin"
)

func InitializeRoutes(router *gin.Engine) {
	router.Static("/uploads", "./uploads")

	api := router.Group("/api")
	{
		customers := api.Group("/customers")
		{
			customers.GET("", controllers.GetCustomers)
			customers.GET("/:id", controllers.GetCustomer)
			customers.POST("", controllers.AddCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)
		}

		stoneTypes := api.Group("/stone-types")
		{
			stoneTypes.GET("", controllers.GetStoneTypes)
			stoneTypes.POST("", controllers.AddStoneType)
			stoneTypes.PUT("/:id", controllers.UpdateStoneType)
			stoneTypes.DELETE("/:id", controllers.DeleteStoneType)
		}

		explosives := api.Group("/explosive-materials")
		{
			explosives.GET("", controllers.GetExplosiveMaterials)
			explosives.POST("", controllers.AddExplosiveMaterial)
			explosives.PUT("/:id", controllers.UpdateExplosiveMaterial)
			explosives.DELETE("/:id", controllers.DeleteExplosiveMaterial)
		}

		vehicles := api.Group("/vehicles")
		{
			vehicles.GET("", controllers.GetVehicles)
			vehicles.GET("/:id", controllers.GetVehicle)
			vehicles.POST("", controllers.AddVehicle)
			vehicles.PUT("/:id", controllers.UpdateVehicle)
			vehicles.DELETE("/:id", controllers.DeleteVehicle)
		}

		labours := api.Group("/labours")
		{
			labours.GET("", controllers.GetLabours)
			labours.POST("", controllers.AddLabour)
			labours.PUT("/:id", controllers.UpdateLabour)
			labours.DELETE("/:id", controllers.DeleteLabour)
			labours.GET("/:id/report", controllers.GetLabourReport)
		}

		attendance := api.Group("/attendance")
		{
			attendance.GET("", controllers.GetAttendance)
			attendance.POST("/mark", controllers.MarkAttendance)
		}

		advances := api.Group("/advances")
		{
			advances.GET("", controllers.GetAdvances)
			advances.POST("", controllers.AddAdvance)
			advances.DELETE("/:id", controllers.DeleteAdvance)
		}

		wages := api.Group("/wages")
		{
			wages.GET("/summary", controllers.GetWagesSummary)
			wages.POST("/mark-paid", controllers.MarkWagesPaid)
		}

		productions := api.Group("/productions")
		{
			productions.GET("", controllers.GetProductions)
			productions.POST("", controllers.AddProduction)
			productions.PUT("/:id", controllers.UpdateProduction)
			productions.DELETE("/:id", controllers.DeleteProduction)
		}

		sales := api.Group("/sales")
		{
			sales.GET("", controllers.GetSales)
			sales.GET("/pending-payments", controllers.GetPendingPayments)
			sales.GET("/:id", controllers.GetSale)
			sales.POST("", controllers.AddSale)
			sales.PUT("/:id", controllers.UpdateSale)
			sales.DELETE("/:id", controllers.DeleteSale)
			sales.POST("/:id/payments", controllers.AddPayment)
		}

		trips := api.Group("/trips")
		{
			trips.GET("", controllers.GetTrips)
			trips.GET("/stats", controllers.GetTripStats)
			trips.GET("/:id", controllers.GetTrip)
			trips.POST("", controllers.CreateTrip)
			trips.PUT("/:id", controllers.UpdateTrip)
			trips.DELETE("/:id", controllers.DeleteTrip)
			trips.POST("/:id/convert-to-sale", controllers.ConvertTripToSale)
		}

		driverPayments := api.Group("/driver-payments")
		{
			driverPayments.GET("", controllers.GetDriverPayments)
			driverPayments.POST("", controllers.CreateDriverPayment)
			driverPayments.PUT("/:id", controllers.UpdateDriverPayment)
			driverPayments.DELETE("/:id", controllers.DeleteDriverPayment)
		}

		expenses := api.Group("/expenses")
		{
			expenses.GET("", controllers.GetExpenses)
			expenses.POST("", controllers.AddExpense)
			expenses.PUT("/:id", controllers.UpdateExpense)
			expenses.DELETE("/:id", controllers.DeleteExpense)
		}

		incomes := api.Group("/incomes")
		{
			incomes.GET("", controllers.GetIncomes)
			incomes.POST("", controllers.AddIncome)
			incomes.DELETE("/:id", controllers.DeleteIncome)
		}

		transportVendors := api.Group("/transport-vendors")
		{
			transportVendors.GET("", controllers.GetTransportVendors)
			transportVendors.POST("", controllers.AddTransportVendor)
			transportVendors.PUT("/:id", controllers.UpdateTransportVendor)
			transportVendors.DELETE("/:id", controllers.DeleteTransportVendor)
		}

		labourContractors := api.Group("/labour-contractors")
		{
			labourContractors.GET("", controllers.GetLabourContractors)
			labourContractors.POST("", controllers.AddLabourContractor)
			labourContractors.PUT("/:id", controllers.UpdateLabourContractor)
			labourContractors.DELETE("/:id", controllers.DeleteLabourContractor)
		}

		explosiveSuppliers := api.Group("/explosive-suppliers")
		{
			explosiveSuppliers.GET("", controllers.GetExplosiveSuppliers)
			explosiveSuppliers.POST("", controllers.AddExplosiveSupplier)
			explosiveSuppliers.PUT("/:id", controllers.UpdateExplosiveSupplier)
			explosiveSuppliers.DELETE("/:id", controllers.DeleteExplosiveSupplier)
		}

		vendorPayments := api.Group("/vendor-payments")
		{
			vendorPayments.GET("", controllers.GetVendorPayments)
			vendorPayments.GET("/outstanding", controllers.GetOutstandingBalances)
			vendorPayments.POST("", controllers.CreateVendorPayment)
			vendorPayments.DELETE("/:id", controllers.DeleteVendorPayment)
		}

		master := api.Group("/master")
		{
			master.GET("/:type", controllers.GetMasterData)
			master.POST("/:type", controllers.AddMasterData)
		}

		reports := api.Group("/reports")
		{
			reports.GET("/day-book", controllers.GetDayBook)
			reports.GET("/cash-flow", controllers.GetCashFlow)
			reports.GET("/profit-loss", controllers.GetProfitLoss)
			reports.GET("/monthly-summary", controllers.GetMonthlySummary)
			reports.GET("/stock", controllers.GetStockReport)
			reports.GET("/vehicle-costs", controllers.GetVehicleCostReport)
			reports.GET("/maintenance-history", controllers.GetMaintenanceHistory)
			reports.GET("/fuel-tracking", controllers.GetFuelTracking)
		}

		api.POST("/upload/bill", controllers.UploadBill)
	}
}
