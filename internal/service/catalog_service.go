package service

import (
	"context"
	"strconv"

	"github.com/user/mocorn/internal/model"
)

// featuredLimit 首页精选栏每类最多展示的条目数
const featuredLimit = 4

// MediaStore 目录服务依赖的条目存储
type MediaStore interface {
	Create(ctx context.Context, item *model.MediaItem) (*model.MediaItem, error)
	FindFeatured(ctx context.Context, isMovie bool, limit int64) ([]*model.MediaItem, error)
	FindByKind(ctx context.Context, isMovie bool) ([]*model.MediaItem, error)
	FindByID(ctx context.Context, id string) (*model.MediaItem, error)
	Replace(ctx context.Context, id string, item *model.MediaItem) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	CountByKind(ctx context.Context, isMovie bool) (int64, error)
}

// MediaInput 表单提交的原始字段，布尔和数值在这里统一转换
type MediaInput struct {
	Title       string `form:"title" binding:"required"`
	Synopsis    string `form:"synopsis"`
	Genre       string `form:"genre"`
	Rating      string `form:"rating"`
	SmallPoster string `form:"smallPoster"`
	LargePoster string `form:"largePoster"`
	TrailerLink string `form:"trailerLink"`
	PricePerDay string `form:"priceperday"`
	IsMovie     string `form:"isMovie"`
	IsFeatured  string `form:"isFeatured"`
}

// toItem 把表单输入转换为条目
// 布尔字段只有字面值 "true" 才算 true，其它一律 false
// 数值字段解析失败时存 0
func (in MediaInput) toItem() *model.MediaItem {
	rating, _ := strconv.ParseFloat(in.Rating, 64)
	price, _ := strconv.ParseFloat(in.PricePerDay, 64)

	return &model.MediaItem{
		Title:       in.Title,
		Synopsis:    in.Synopsis,
		Genre:       in.Genre,
		Rating:      rating,
		SmallPoster: in.SmallPoster,
		LargePoster: in.LargePoster,
		TrailerLink: in.TrailerLink,
		PricePerDay: price,
		IsMovie:     in.IsMovie == "true",
		IsFeatured:  in.IsFeatured == "true",
	}
}

// CatalogService 条目的增删改查契约
type CatalogService struct {
	store MediaStore
}

func NewCatalogService(store MediaStore) *CatalogService {
	return &CatalogService{store: store}
}

// Featured 首页精选栏：指定类型且 IsFeatured 为真，最多 4 条
func (s *CatalogService) Featured(ctx context.Context, isMovie bool) ([]*model.MediaItem, error) {
	return s.store.FindFeatured(ctx, isMovie, featuredLimit)
}

// ListByKind 指定类型的全部条目
func (s *CatalogService) ListByKind(ctx context.Context, isMovie bool) ([]*model.MediaItem, error) {
	return s.store.FindByKind(ctx, isMovie)
}

// GetByID 根据 ID 查找条目，未找到返回 (nil, nil)
func (s *CatalogService) GetByID(ctx context.Context, id string) (*model.MediaItem, error) {
	return s.store.FindByID(ctx, id)
}

// Create 创建条目
func (s *CatalogService) Create(ctx context.Context, in MediaInput) (*model.MediaItem, error) {
	return s.store.Create(ctx, in.toItem())
}

// Update 整条替换指定 ID 的条目，表单缺省的字段会被清空
// 未找到返回 (nil, nil)
func (s *CatalogService) Update(ctx context.Context, id string, in MediaInput) (*model.MediaItem, error) {
	item := in.toItem()

	matched, err := s.store.Replace(ctx, id, item)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, nil
	}

	item.ID = id
	return item, nil
}

// Delete 硬删除条目，返回是否存在该记录
func (s *CatalogService) Delete(ctx context.Context, id string) (bool, error) {
	return s.store.Delete(ctx, id)
}

// Counts 电影与剧集的条目总数（后台仪表盘用）
func (s *CatalogService) Counts(ctx context.Context) (movies, shows int64, err error) {
	if movies, err = s.store.CountByKind(ctx, true); err != nil {
		return 0, 0, err
	}
	if shows, err = s.store.CountByKind(ctx, false); err != nil {
		return 0, 0, err
	}
	return movies, shows, nil
}
