package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ckeeling/splitledger/internal/apperrors"
	portssvc "github.com/ckeeling/splitledger/internal/core/ports/services"
	"github.com/ckeeling/splitledger/internal/dto"
	"github.com/ckeeling/splitledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// personHandler handles HTTP requests related to people.
type personHandler struct {
	personService portssvc.PersonSvcFacade
	partyService  portssvc.PartySvcFacade
}

func newPersonHandler(ps portssvc.PersonSvcFacade, parties portssvc.PartySvcFacade) *personHandler {
	return &personHandler{personService: ps, partyService: parties}
}

// registerPersonRoutes registers routes related to people.
func registerPersonRoutes(rg *gin.RouterGroup, personService portssvc.PersonSvcFacade, partyService portssvc.PartySvcFacade, requireEditor gin.HandlerFunc) {
	h := newPersonHandler(personService, partyService)

	people := rg.Group("/people")
	{
		people.GET("", h.listPeople)
		people.GET("/:personID", h.getPerson)
		people.POST("", requireEditor, h.createPerson)
		people.PUT("/:personID", requireEditor, h.updatePerson)
		people.DELETE("/:personID", requireEditor, h.deletePerson)
	}
}

// listPeople godoc
// @Summary List people
// @Description Retrieves all payers with their party attached
// @Tags people
// @Produce json
// @Success 200 {array} dto.PersonResponse
// @Security BearerAuth
// @Router /people [get]
func (h *personHandler) listPeople(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	people, err := h.personService.ListPersons(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list people", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list people"})
		return
	}

	parties, err := h.partyService.ListParties(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list parties for people", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list people"})
		return
	}
	partyByID := make(map[string]int, len(parties))
	for i := range parties {
		partyByID[parties[i].PartyID] = i
	}

	res := make([]dto.PersonResponse, len(people))
	for i := range people {
		if idx, ok := partyByID[people[i].PartyID]; ok {
			res[i] = dto.ToPersonResponseWithParty(&people[i], &parties[idx])
		} else {
			res[i] = dto.ToPersonResponse(&people[i])
		}
	}
	c.JSON(http.StatusOK, res)
}

// getPerson godoc
// @Summary Get a person
// @Tags people
// @Produce json
// @Param personID path string true "Person ID"
// @Success 200 {object} dto.PersonResponse
// @Failure 404 {object} map[string]string "Person not found"
// @Security BearerAuth
// @Router /people/{personID} [get]
func (h *personHandler) getPerson(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	personID := c.Param("personID")

	person, err := h.personService.GetPersonByID(c.Request.Context(), personID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
		} else {
			logger.Error("Failed to get person", slog.String("person_id", personID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve person"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToPersonResponse(person))
}

// createPerson godoc
// @Summary Create a person
// @Tags people
// @Accept json
// @Produce json
// @Param person body dto.CreatePersonRequest true "Person details"
// @Success 201 {object} dto.PersonResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Name already used within the party"
// @Security BearerAuth
// @Router /people [post]
func (h *personHandler) createPerson(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	person, err := h.personService.CreatePerson(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Party does not exist"})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "A person with that name already exists in the party"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create person", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create person"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToPersonResponse(person))
}

// updatePerson godoc
// @Summary Update a person
// @Tags people
// @Accept json
// @Produce json
// @Param personID path string true "Person ID"
// @Param person body dto.UpdatePersonRequest true "Fields to update"
// @Success 200 {object} dto.PersonResponse
// @Failure 404 {object} map[string]string "Person not found"
// @Security BearerAuth
// @Router /people/{personID} [put]
func (h *personHandler) updatePerson(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	personID := c.Param("personID")

	var req dto.UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	person, err := h.personService.UpdatePerson(c.Request.Context(), personID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "A person with that name already exists in the party"})
		} else {
			logger.Error("Failed to update person", slog.String("person_id", personID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update person"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToPersonResponse(person))
}

// deletePerson godoc
// @Summary Delete a person
// @Tags people
// @Param personID path string true "Person ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Person not found"
// @Failure 409 {object} map[string]string "Person still referenced by expenses"
// @Security BearerAuth
// @Router /people/{personID} [delete]
func (h *personHandler) deletePerson(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	personID := c.Param("personID")

	if err := h.personService.DeletePerson(c.Request.Context(), personID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Person is still referenced by expenses"})
		} else {
			logger.Error("Failed to delete person", slog.String("person_id", personID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete person"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
