package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// masterTypes maps the :type path segment to the handlers serving that
// master. Lookup dropdowns on the client hit these instead of the full
// resource routes.
var masterTypes = map[string]struct {
	get gin.HandlerFunc
	add gin.HandlerFunc
}{
	"expense-categories": {get: GetExpenseCategories, add: AddExpenseCategory},
	"income-sources":     {get: GetIncomeSources, add: AddIncomeSource},
	"vehicles":           {get: GetVehicles, add: AddVehicle},
	"customers":          {get: GetCustomers, add: AddCustomer},
}

func GetMasterData(c *gin.Context) {
	entry, ok := masterTypes[c.Param("type")]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Unknown master type: " + c.Param("type")})
		return
	}
	entry.get(c)
}

func AddMasterData(c *gin.Context) {
	entry, ok := masterTypes[c.Param("type")]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Unknown master type: " + c.Param("type")})
		return
	}
	entry.add(c)
}
