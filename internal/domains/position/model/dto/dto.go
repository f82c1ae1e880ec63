package dto

import (
	"hotel/internal/domains/position/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

type CreatePositionRequest struct {
	Title      string `json:"title"      validate:"required,max=100"`
	Level      string `json:"level"      validate:"omitempty,max=50"`
	Department string `json:"department" validate:"omitempty,max=100"`
}

func (c *CreatePositionRequest) ToModel(operator string) model.Position {
	return model.Position{
		ID:         uuid.NewString(),
		Title:      c.Title,
		Level:      c.Level,
		Department: c.Department,
		Metadata:   gModel.NewMetadata(timezone.Now(), operator),
	}
}

type UpdatePositionRequest struct {
	Title      string `db:"title"      json:"title"      validate:"omitempty,max=100"`
	Level      string `db:"level"      json:"level"      validate:"omitempty,max=50"`
	Department string `db:"department" json:"department" validate:"omitempty,max=100"`
}

type PositionResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Level      string `json:"level"`
	Department string `json:"department"`
	gDto.Metadata
}

func (r *PositionResponse) FromModel(model model.Position) {
	r.ID = model.ID
	r.Title = model.Title
	r.Level = model.Level
	r.Department = model.Department
	r.Metadata.FromModel(model.Metadata)
}

type GetPositionsResponse struct {
	Positions []PositionResponse `json:"positions"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetPositionsResponse) FromModels(models []model.Position, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Positions = make([]PositionResponse, len(models))
	for i, mod := range models {
		r.Positions[i].FromModel(mod)
	}
}
