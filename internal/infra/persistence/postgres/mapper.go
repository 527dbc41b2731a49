package postgres

import (
	"delicious/internal/domain/entity"
	"delicious/internal/infra/persistence/model"

	"github.com/google/uuid"
)

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	favorites := make([]uuid.UUID, 0, len(data.Hearts))
	for _, heart := range data.Hearts {
		favorites = append(favorites, heart.StoreID)
	}

	return &entity.User{
		ID:                  data.ID,
		Email:               data.Email,
		Name:                data.Name,
		PasswordHash:        data.PasswordHash,
		ResetToken:          data.ResetToken,
		ResetTokenExpiresAt: data.ResetTokenExpiresAt,
		FavoriteStoreIDs:    favorites,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                  data.ID,
		Email:               data.Email,
		Name:                data.Name,
		PasswordHash:        data.PasswordHash,
		ResetToken:          data.ResetToken,
		ResetTokenExpiresAt: data.ResetTokenExpiresAt,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	tags := make([]string, 0, len(data.Tags))
	for _, tag := range data.Tags {
		tags = append(tags, tag.Tag)
	}

	return &entity.Store{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		Tags:        tags,
		Location:    entity.NewLocation(data.Longitude, data.Latitude, data.Address),
		PhotoRef:    data.PhotoRef,
		AuthorID:    data.AuthorID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toStoresDomain(data []*model.StoreModel) []*entity.Store {
	stores := make([]*entity.Store, 0, len(data))
	for _, m := range data {
		stores = append(stores, toStoreDomain(m))
	}

	return stores
}

func fromStoreDomain(data *entity.Store) *model.StoreModel {
	if data == nil {
		return nil
	}

	return &model.StoreModel{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		Longitude:   data.Location.Point.Lon(),
		Latitude:    data.Location.Point.Lat(),
		Address:     data.Location.Address,
		PhotoRef:    data.PhotoRef,
		AuthorID:    data.AuthorID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		Tags:        fromTagsDomain(data.ID, data.Tags),
	}
}

func fromTagsDomain(storeID uuid.UUID, tags []string) []model.StoreTagModel {
	tagModels := make([]model.StoreTagModel, 0, len(tags))
	for _, tag := range tags {
		tagModels = append(tagModels, model.StoreTagModel{StoreID: storeID, Tag: tag})
	}

	return tagModels
}

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:        data.ID,
		AuthorID:  data.AuthorID,
		StoreID:   data.StoreID,
		Rating:    data.Rating,
		Text:      data.Text,
		CreatedAt: data.CreatedAt,
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:        data.ID,
		AuthorID:  data.AuthorID,
		StoreID:   data.StoreID,
		Rating:    data.Rating,
		Text:      data.Text,
		CreatedAt: data.CreatedAt,
	}
}
