package services

import (
	"furniture_store/internal/models"
	"furniture_store/internal/repository"
)

type ReviewService interface {
	AddReview(userID, productID uint, rating int, comment string) (*models.Review, error)
	GetProductReviews(productID uint) ([]models.Review, error)
	DeleteReview(reviewID, requesterID uint, requesterRole models.UserRole) error
}

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, productRepo: productRepo}
}

func (s *reviewService) AddReview(userID, productID uint, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, asNotFound(err, ErrProductNotFound)
	}

	review := &models.Review{
		ProductID: productID,
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) GetProductReviews(productID uint) ([]models.Review, error) {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, asNotFound(err, ErrProductNotFound)
	}
	return s.reviewRepo.GetByProductID(productID)
}

// DeleteReview removes a review. Customers can delete only their own reviews;
// admins can delete any.
func (s *reviewService) DeleteReview(reviewID, requesterID uint, requesterRole models.UserRole) error {
	review, err := s.reviewRepo.GetByID(reviewID)
	if err != nil {
		return asNotFound(err, ErrReviewNotFound)
	}
	if requesterRole != models.RoleAdmin && review.UserID != requesterID {
		return ErrNotReviewAuthor
	}
	return s.reviewRepo.Delete(reviewID)
}
