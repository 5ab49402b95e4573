package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "phonebot/internal/errors"
	"phonebot/internal/models"
	"phonebot/internal/pagination"
	"phonebot/internal/services"
)

// Values of the "path" query parameter.
const (
	adminPathStatistics   = "statistics"
	adminPathPhoneRecords = "phone-records"
	adminPathUsers        = "users"
)

// AdminHandler serves the admin panel on a single route, dispatching on the
// HTTP method and the "path" query parameter.
type AdminHandler struct {
	recordService     services.PhoneRecordServicer
	userService       services.BotUserServicer
	statisticsService services.StatisticsServicer
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(
	recordService services.PhoneRecordServicer,
	userService services.BotUserServicer,
	statisticsService services.StatisticsServicer,
) *AdminHandler {
	return &AdminHandler{
		recordService:     recordService,
		userService:       userService,
		statisticsService: statisticsService,
	}
}

// CreatePhoneRecordRequest represents the request payload for adding a record.
// Any status sent by the client is ignored; new records are always active.
type CreatePhoneRecordRequest struct {
	Phone          string                  `json:"phone" binding:"required,max=50"`
	Name           string                  `json:"name" binding:"required,max=255"`
	Info           string                  `json:"info"`
	AdditionalInfo []models.AdditionalInfo `json:"additional_info"`
}

// UpdatePhoneRecordRequest represents the request payload for replacing a record.
// Omitting additional_info keeps the stored list.
type UpdatePhoneRecordRequest struct {
	ID             uint                    `json:"id" binding:"required"`
	Phone          string                  `json:"phone" binding:"required,max=50"`
	Name           string                  `json:"name" binding:"required,max=255"`
	Info           string                  `json:"info"`
	Status         string                  `json:"status" binding:"required,record_status"`
	AdditionalInfo []models.AdditionalInfo `json:"additional_info"`
}

// UpdateUserStatusRequest represents the request payload for moderating a user.
type UpdateUserStatusRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Status string `json:"status" binding:"required,user_status"`
}

// Handle routes an admin request.
// @Summary     Admin API
// @Description Dispatches on method and the path query parameter (statistics, phone-records, users).
// @Description GET statistics|phone-records|users, POST phone-records, PUT phone-records|users.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       path      query string true  "statistics, phone-records or users"
// @Param       search    query string false "Substring filter for list paths"
// @Param       page      query int    false "Page number (requires page_size)"
// @Param       page_size query int    false "Page size; omit for the full list"
// @Success     200 {array}  PhoneRecordListItem "Records (path=phone-records)"
// @Success     201 {object} PhoneRecordResponse "Record created"
// @Failure     400 {object} ErrorResponse "Invalid path parameter or body"
// @Failure     405 {object} ErrorResponse "Method not allowed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /admin [get]
// @Router      /admin [post]
// @Router      /admin [put]
func (h *AdminHandler) Handle(c *gin.Context) {
	path := c.Query("path")

	switch c.Request.Method {
	case http.MethodGet:
		switch path {
		case adminPathStatistics:
			h.getStatistics(c)
		case adminPathPhoneRecords:
			h.listPhoneRecords(c)
		case adminPathUsers:
			h.listBotUsers(c)
		default:
			respondWithError(c, apperrors.ErrInvalidPath)
		}

	case http.MethodPost:
		switch path {
		case adminPathPhoneRecords:
			h.createPhoneRecord(c)
		default:
			respondWithError(c, apperrors.ErrInvalidPath)
		}

	case http.MethodPut:
		switch path {
		case adminPathPhoneRecords:
			h.updatePhoneRecord(c)
		case adminPathUsers:
			h.updateUserStatus(c)
		default:
			respondWithError(c, apperrors.ErrInvalidPath)
		}

	default:
		respondWithError(c, apperrors.ErrMethodNotAllowed)
	}
}

func (h *AdminHandler) getStatistics(c *gin.Context) {
	stats, err := h.statisticsService.GetStatistics()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) listPhoneRecords(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}
	page.Defaults()

	records, err := h.recordService.ListPhoneRecords(c.Query("search"), page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPhoneRecordListItems(records))
}

func (h *AdminHandler) listBotUsers(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}
	page.Defaults()

	users, err := h.userService.ListBotUsers(c.Query("search"), page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBotUserListItems(users))
}

func (h *AdminHandler) createPhoneRecord(c *gin.Context) {
	var req CreatePhoneRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	record, err := h.recordService.CreatePhoneRecord(req.Phone, req.Name, req.Info, req.AdditionalInfo)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newPhoneRecordResponse(record))
}

// updatePhoneRecord answers 200 with null when the id does not exist.
func (h *AdminHandler) updatePhoneRecord(c *gin.Context) {
	var req UpdatePhoneRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	record, err := h.recordService.UpdatePhoneRecord(
		req.ID,
		req.Phone,
		req.Name,
		req.Info,
		models.RecordStatus(req.Status),
		req.AdditionalInfo,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPhoneRecordResponse(record))
}

// updateUserStatus answers 200 with null when the id does not exist.
func (h *AdminHandler) updateUserStatus(c *gin.Context) {
	var req UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	user, err := h.userService.UpdateBotUserStatus(req.ID, models.UserStatus(req.Status))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBotUserStatusResponse(user))
}
