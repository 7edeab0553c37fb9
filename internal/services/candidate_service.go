package services

import (
	"context"
	"encoding/json"

	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/dtos"
	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/models"
	"github.com/TalentBox-Labs/TalentScout-ats-platform-sub000/internal/store"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CandidateService struct {
	Store store.Store
}

func NewCandidateService(st store.Store) *CandidateService {
	return &CandidateService{Store: st}
}

func (s *CandidateService) CreateCandidate(ctx context.Context, req *dtos.CandidateCreationRequest) (*models.Candidate, error) {
	skills, err := json.Marshal(req.Skills)
	if err != nil {
		return nil, err
	}
	c := &models.Candidate{
		ID:             uuid.New(),
		OrganizationID: req.OrganizationID,
		FullName:       req.FullName,
		Email:          req.Email,
		Headline:       req.Headline,
		Location:       req.Location,
		ProfileURL:     req.ProfileURL,
		Skills:         datatypes.JSON(skills),
	}
	if err := s.Store.CreateCandidate(ctx, c); err != nil {
		return nil, translateStoreErr(err, "candidate")
	}
	return c, nil
}
