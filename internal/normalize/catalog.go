package normalize

import (
	"github.com/Travel-Muslim/Frontend-sub000/internal/domain"
)

var (
	packageIDKeys   = []string{"package_id", "packageId", "id"}
	packageNameKeys = []string{"package_name", "name", "title"}
	descriptionKeys = []string{"description", "desc", "about"}
	galleryKeys     = []string{"gallery", "images", "photos"}
	itineraryKeys   = []string{"itinerary", "itineraries", "days"}
	quotaKeys       = []string{"quota", "capacity", "slots"}

	destinationIDKeys = []string{"destination_id", "destinationId", "id"}
	countryKeys       = []string{"country"}
	ratingKeys        = []string{"rating", "avg_rating", "averageRating"}

	articleIDKeys   = []string{"article_id", "articleId", "id"}
	articleTitleKey = []string{"title", "headline"}
	authorKeys      = []string{"author", "author_name", "writer"}
	publishedKeys   = []string{"published_at", "publishedAt", "created_at"}
	blocksKeys      = []string{"blocks", "content", "body"}

	userIDKeys = []string{"user_id", "userId", "id"}
	avatarKeys = []string{"avatar", "photo", "profile_picture"}
	roleKeys   = []string{"role"}

	postIDKeys    = []string{"post_id", "postId", "id"}
	postBodyKeys  = []string{"body", "content", "text"}
	postLikesKeys = []string{"likes", "like_count", "total_likes"}
	createdAtKeys = []string{"created_at", "createdAt"}
)

func Package(raw interface{}) domain.Package {
	obj := asObject(raw)
	if obj == nil {
		obj = map[string]interface{}{}
	}

	p := domain.Package{
		PackageID:   pickID(obj, packageIDKeys...),
		Name:        pickStr(obj, packageNameKeys...),
		Description: pickStr(obj, descriptionKeys...),
		Image:       pickStr(obj, snapshotImageKeys...),
		Location:    pickStr(obj, snapshotLocationKeys...),
		Continent:   pickStr(obj, snapshotContinentKeys...),
		Airline:     pickStr(obj, snapshotAirlineKeys...),
		Airport:     pickStr(obj, snapshotAirportKeys...),
		Period:      pickStr(obj, snapshotPeriodKeys...),
		Price:       pickStrDefault(obj, "0", priceKeys...),
		Quota:       pickInt(obj, quotaKeys...),
		Gallery:     pickStrList(obj, galleryKeys...),
	}

	days := pickObjList(obj, itineraryKeys...)
	p.Itinerary = make([]domain.ItineraryDay, 0, len(days))
	for i, day := range days {
		d := domain.ItineraryDay{
			Day:         pickInt(day, "day", "day_number"),
			Title:       pickStr(day, "title", "name"),
			Description: pickStr(day, "description", "detail"),
		}
		if d.Day == 0 {
			d.Day = i + 1
		}
		p.Itinerary = append(p.Itinerary, d)
	}
	return p
}

func Packages(raw []interface{}) []domain.Package {
	out := make([]domain.Package, 0, len(raw))
	for _, item := range raw {
		out = append(out, Package(item))
	}
	return out
}

func Destination(raw interface{}) domain.Destination {
	obj := asObject(raw)
	if obj == nil {
		obj = map[string]interface{}{}
	}
	return domain.Destination{
		DestinationID: pickID(obj, destinationIDKeys...),
		Name:          pickStr(obj, packageNameKeys...),
		Country:       pickStr(obj, countryKeys...),
		Continent:     pickStr(obj, snapshotContinentKeys...),
		Image:         pickStr(obj, snapshotImageKeys...),
		Description:   pickStr(obj, descriptionKeys...),
		Rating:        pickFloat(obj, ratingKeys...),
	}
}

func Destinations(raw []interface{}) []domain.Destination {
	out := make([]domain.Destination, 0, len(raw))
	for _, item := range raw {
		out = append(out, Destination(item))
	}
	return out
}

func Article(raw interface{}) domain.Article {
	obj := asObject(raw)
	if obj == nil {
		obj = map[string]interface{}{}
	}
	return domain.Article{
		ArticleID:   pickID(obj, articleIDKeys...),
		Title:       pickStr(obj, articleTitleKey...),
		Author:      pickStr(obj, authorKeys...),
		Image:       pickStr(obj, snapshotImageKeys...),
		PublishedAt: pickStr(obj, publishedKeys...),
		Blocks:      pickStrList(obj, blocksKeys...),
	}
}

func Articles(raw []interface{}) []domain.Article {
	out := make([]domain.Article, 0, len(raw))
	for _, item := range raw {
		out = append(out, Article(item))
	}
	return out
}

func User(raw interface{}) domain.User {
	obj := asObject(raw)
	if obj == nil {
		obj = map[string]interface{}{}
	}
	return domain.User{
		UserID:   pickStr(obj, userIDKeys...),
		FullName: pickStr(obj, fullNameKeys...),
		Email:    pickStr(obj, emailKeys...),
		Phone:    pickStr(obj, phoneKeys...),
		Avatar:   pickStr(obj, avatarKeys...),
		Role:     pickStrDefault(obj, "user", roleKeys...),
	}
}

func CommunityPost(raw interface{}) domain.CommunityPost {
	obj := asObject(raw)
	if obj == nil {
		obj = map[string]interface{}{}
	}
	return domain.CommunityPost{
		PostID:    pickID(obj, postIDKeys...),
		UserID:    pickStr(obj, userIDKeys...),
		Author:    pickStr(obj, authorKeys...),
		Title:     pickStr(obj, articleTitleKey...),
		Body:      pickStr(obj, postBodyKeys...),
		CreatedAt: pickStr(obj, createdAtKeys...),
		Likes:     pickInt(obj, postLikesKeys...),
	}
}

func CommunityPosts(raw []interface{}) []domain.CommunityPost {
	out := make([]domain.CommunityPost, 0, len(raw))
	for _, item := range raw {
		out = append(out, CommunityPost(item))
	}
	return out
}
