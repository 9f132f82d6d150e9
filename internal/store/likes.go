package store

import (
	"community/internal/models"

	"gorm.io/gorm"
)

// LikedPostIDs returns the ids of every post the user has liked, in one
// query projected to post_id.
func (s *Store) LikedPostIDs(userID string) ([]string, error) {
	var ids []string
	err := s.db.Model(&models.PostLike{}).
		Where("user_id = ?", userID).
		Pluck("post_id", &ids).Error
	return ids, err
}

func (s *Store) HasLiked(postID, userID string) (bool, error) {
	var count int64
	err := s.db.Model(&models.PostLike{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	return count > 0, err
}

// AddLike inserts the like row and bumps the denormalized counter in one
// transaction, so the two cannot drift apart on a partial failure.
func (s *Store) AddLike(postID, userID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		like := models.PostLike{PostID: postID, UserID: userID}
		if err := tx.Create(&like).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).
			Where("id = ?", postID).
			UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error
	})
}

// RemoveLike deletes the like row and decrements the counter, clamped at
// zero, in one transaction.
func (s *Store) RemoveLike(postID, userID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ? AND user_id = ?", postID, userID).
			Delete(&models.PostLike{}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).
			Where("id = ?", postID).
			UpdateColumn("likes_count", gorm.Expr("GREATEST(likes_count - 1, 0)")).Error
	})
}
