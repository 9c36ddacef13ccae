package rating

import (
	"SmartMenza-Backend/domain"
	"SmartMenza-Backend/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RatingService interface {
		SubmitRating(ctx context.Context, req domain.SubmitRatingRequest, userID string) (domain.RatingCommentResponse, error)
		UpdateRating(ctx context.Context, req domain.SubmitRatingRequest, userID string) (domain.RatingCommentResponse, error)
		GetMealRatingSummary(ctx context.Context, mealID string) (domain.MealRatingSummaryResponse, error)
		GetOverallStats(ctx context.Context, dateFrom, dateTo string) (domain.OverallStatsResponse, error)
	}

	ratingService struct {
		ratingRepository RatingRepository
	}
)

func NewRatingService(ratingRepository RatingRepository) RatingService {
	return &ratingService{ratingRepository: ratingRepository}
}

func ratingResponse(rating *entities.RatingComment) domain.RatingCommentResponse {
	return domain.RatingCommentResponse{
		ID:        rating.ID.String(),
		MealID:    rating.MealID.String(),
		UserID:    rating.UserID.String(),
		Rating:    rating.Rating,
		Comment:   rating.Comment,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}
}

// SubmitRating upserts: a first submission creates the row, a repeat from the
// same user for the same meal overwrites rating and comment.
func (s *ratingService) SubmitRating(ctx context.Context, req domain.SubmitRatingRequest, userID string) (domain.RatingCommentResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return domain.RatingCommentResponse{}, domain.ErrRatingOutOfRange
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RatingCommentResponse{}, domain.ErrParseUUID
	}
	mealUUID, err := uuid.Parse(req.MealID)
	if err != nil {
		return domain.RatingCommentResponse{}, domain.ErrParseUUID
	}

	exists, err := s.ratingRepository.MealExists(ctx, mealUUID)
	if err != nil {
		return domain.RatingCommentResponse{}, err
	}
	if !exists {
		return domain.RatingCommentResponse{}, domain.ErrRatingMealGone
	}

	rating := &entities.RatingComment{
		ID:      uuid.New(),
		UserID:  userUUID,
		MealID:  mealUUID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := s.ratingRepository.UpsertRating(ctx, rating); err != nil {
		return domain.RatingCommentResponse{}, err
	}

	// Re-read so the response carries the surviving row's id and timestamps
	// when the upsert hit an existing rating.
	saved, err := s.ratingRepository.GetRating(ctx, userUUID, mealUUID)
	if err != nil {
		return domain.RatingCommentResponse{}, err
	}

	return ratingResponse(saved), nil
}

func (s *ratingService) UpdateRating(ctx context.Context, req domain.SubmitRatingRequest, userID string) (domain.RatingCommentResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return domain.RatingCommentResponse{}, domain.ErrRatingOutOfRange
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RatingCommentResponse{}, domain.ErrParseUUID
	}
	mealUUID, err := uuid.Parse(req.MealID)
	if err != nil {
		return domain.RatingCommentResponse{}, domain.ErrParseUUID
	}

	rating, err := s.ratingRepository.GetRating(ctx, userUUID, mealUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RatingCommentResponse{}, domain.ErrRatingNotFound
		}
		return domain.RatingCommentResponse{}, err
	}

	rating.Rating = req.Rating
	rating.Comment = req.Comment

	if err := s.ratingRepository.UpdateRating(ctx, rating); err != nil {
		return domain.RatingCommentResponse{}, err
	}

	return ratingResponse(rating), nil
}

func (s *ratingService) GetMealRatingSummary(ctx context.Context, mealID string) (domain.MealRatingSummaryResponse, error) {
	mealUUID, err := uuid.Parse(mealID)
	if err != nil {
		return domain.MealRatingSummaryResponse{}, domain.ErrParseUUID
	}

	summary, err := s.ratingRepository.GetMealRatingSummary(ctx, mealUUID)
	if err != nil {
		return domain.MealRatingSummaryResponse{}, err
	}

	return domain.MealRatingSummaryResponse{
		MealID:        mealID,
		RatingsCount:  summary.RatingsCount,
		AverageRating: summary.AverageRating,
	}, nil
}

func (s *ratingService) GetOverallStats(ctx context.Context, dateFrom, dateTo string) (domain.OverallStatsResponse, error) {
	var from, to *time.Time

	if dateFrom != "" {
		parsed, err := time.Parse("2006-01-02", dateFrom)
		if err != nil {
			return domain.OverallStatsResponse{}, domain.ErrInvalidDate
		}
		from = &parsed
	}
	if dateTo != "" {
		parsed, err := time.Parse("2006-01-02", dateTo)
		if err != nil {
			return domain.OverallStatsResponse{}, domain.ErrInvalidDate
		}
		to = &parsed
	}

	stats, err := s.ratingRepository.GetOverallStats(ctx, from, to)
	if err != nil {
		return domain.OverallStatsResponse{}, err
	}

	return domain.OverallStatsResponse{
		TotalMeals:           stats.TotalMeals,
		OverallAverageRating: stats.OverallAverageRating,
		MaxRating:            stats.MaxRating,
	}, nil
}
