package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danuartha/resto-pos/dto"
	"github.com/danuartha/resto-pos/events"
	"github.com/danuartha/resto-pos/services"
	"github.com/danuartha/resto-pos/utils"
)

type TableController struct {
	Service *services.TableService
}

func NewTableController(service *services.TableService) *TableController {
	return &TableController{Service: service}
}

// CreateTable -> menambahkan meja baru
func (tc *TableController) CreateTable(c *gin.Context) {
	var req dto.TableCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Service.Create(req)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	events.BroadcastTableCreate(*table)
	utils.InfoLogger.Printf("New table created: %s (status=%s)", table.Label, table.Status)
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// GetAllTables -> menampilkan seluruh meja
func (tc *TableController) GetAllTables(c *gin.Context) {
	tables, err := tc.Service.GetAll()
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// GetTableByID -> detail satu meja
func (tc *TableController) GetTableByID(c *gin.Context) {
	tableID, ok := parseIDParam(c, "table_id")
	if !ok {
		return
	}

	table, err := tc.Service.GetByID(tableID)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// UpdateTable -> update label/seats/status/active
func (tc *TableController) UpdateTable(c *gin.Context) {
	tableID, ok := parseIDParam(c, "table_id")
	if !ok {
		return
	}

	var req dto.TableUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Service.Update(tableID, req)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	events.BroadcastTableUpdate(*table)
	utils.InfoLogger.Printf("Table %d updated (status=%s)", table.ID, table.Status)
	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// DeleteTable -> menghapus meja
func (tc *TableController) DeleteTable(c *gin.Context) {
	tableID, ok := parseIDParam(c, "table_id")
	if !ok {
		return
	}

	if err := tc.Service.Delete(tableID); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	events.BroadcastTableDelete(tableID)
	utils.InfoLogger.Printf("Table %d deleted", tableID)
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{"id": tableID})
}

// GetDashboardStats -> hitungan meja per status untuk floor display
func (tc *TableController) GetDashboardStats(c *gin.Context) {
	stats, err := tc.Service.StatusCounts()
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
}

// FindTablesByStatus -> mis. list meja AVAILABLE
func (tc *TableController) FindTablesByStatus(c *gin.Context) {
	status := c.Query("status")

	tables, err := tc.Service.FindByStatus(status)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Tables with status: "+status, tables)
}
