package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/user/mocorn/internal/model"
)

const mediaCollection = "media_items"

type MediaRepository struct {
	coll *mongo.Collection
}

func NewMediaRepository(db *mongo.Database) *MediaRepository {
	return &MediaRepository{coll: db.Collection(mediaCollection)}
}

type mediaDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Synopsis    string             `bson:"synopsis"`
	Genre       string             `bson:"genre"`
	Rating      float64            `bson:"rating"`
	SmallPoster string             `bson:"small_poster"`
	LargePoster string             `bson:"large_poster"`
	TrailerLink string             `bson:"trailer_link"`
	PricePerDay float64            `bson:"price_per_day"`
	IsMovie     bool               `bson:"is_movie"`
	IsFeatured  bool               `bson:"is_featured"`
}

func toDoc(item *model.MediaItem) mediaDoc {
	return mediaDoc{
		Title:       item.Title,
		Synopsis:    item.Synopsis,
		Genre:       item.Genre,
		Rating:      item.Rating,
		SmallPoster: item.SmallPoster,
		LargePoster: item.LargePoster,
		TrailerLink: item.TrailerLink,
		PricePerDay: item.PricePerDay,
		IsMovie:     item.IsMovie,
		IsFeatured:  item.IsFeatured,
	}
}

func (d *mediaDoc) toModel() *model.MediaItem {
	return &model.MediaItem{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Synopsis:    d.Synopsis,
		Genre:       d.Genre,
		Rating:      d.Rating,
		SmallPoster: d.SmallPoster,
		LargePoster: d.LargePoster,
		TrailerLink: d.TrailerLink,
		PricePerDay: d.PricePerDay,
		IsMovie:     d.IsMovie,
		IsFeatured:  d.IsFeatured,
	}
}

// Create 创建条目，ID 由数据库分配
func (r *MediaRepository) Create(ctx context.Context, item *model.MediaItem) (*model.MediaItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toDoc(item))
	if err != nil {
		return nil, fmt.Errorf("插入条目失败: %w", err)
	}

	created := *item
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// FindFeatured 查找指定类型的精选条目，按存储顺序返回，最多 limit 条
func (r *MediaRepository) FindFeatured(ctx context.Context, isMovie bool, limit int64) ([]*model.MediaItem, error) {
	return r.find(ctx, bson.M{"is_movie": isMovie, "is_featured": true}, options.Find().SetLimit(limit))
}

// FindByKind 查找指定类型的全部条目
func (r *MediaRepository) FindByKind(ctx context.Context, isMovie bool) ([]*model.MediaItem, error) {
	return r.find(ctx, bson.M{"is_movie": isMovie}, options.Find())
}

func (r *MediaRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*model.MediaItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("查询条目失败: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]*model.MediaItem, 0)
	for cursor.Next(ctx) {
		var doc mediaDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("解析条目失败: %w", err)
		}
		items = append(items, doc.toModel())
	}
	return items, cursor.Err()
}

// FindByID 根据 ID 查找条目，ID 非法或未找到均返回 (nil, nil)
func (r *MediaRepository) FindByID(ctx context.Context, id string) (*model.MediaItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mediaDoc
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("查找条目失败: %w", err)
	}

	return doc.toModel(), nil
}

// Replace 整条替换指定 ID 的条目，返回是否匹配到记录
func (r *MediaRepository) Replace(ctx context.Context, id string, item *model.MediaItem) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, toDoc(item))
	if err != nil {
		return false, fmt.Errorf("替换条目失败: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// Delete 硬删除指定 ID 的条目，返回是否删除到记录
func (r *MediaRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("删除条目失败: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// CountByKind 统计指定类型的条目数（后台仪表盘用）
func (r *MediaRepository) CountByKind(ctx context.Context, isMovie bool) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{"is_movie": isMovie})
}
