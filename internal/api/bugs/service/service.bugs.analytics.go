package bugsvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/ChiragDawra/BrainBug/internal/api/bugs/dto"
	"github.com/ChiragDawra/BrainBug/internal/common"
)

// groupPipeline xây pipeline đếm theo một chiều (field) cho một user.
// Sort theo count giảm dần; hòa nhau giữ nguyên thứ tự group ($sort ổn định).
func groupPipeline(userKey interface{}, field string) []bson.M {
	return []bson.M{
		{"$match": bson.M{"userId": userKey}},
		{"$group": bson.M{
			"_id":   "$" + field,
			"count": bson.M{"$sum": 1},
		}},
		{"$project": bson.M{
			field:   "$_id",
			"count": 1,
			"_id":   0,
		}},
		{"$sort": bson.M{"count": -1}},
	}
}

// GetAnalytics trả về 3 phân bố độc lập theo bugType, projectName, language.
func (s *ReportService) GetAnalytics(ctx context.Context, userKey interface{}) (*dto.AnalyticsData, error) {
	data := &dto.AnalyticsData{
		BugTypeDistribution: []dto.BugTypeCount{},
		BugsByProject:       []dto.ProjectCount{},
		BugsByLanguage:      []dto.LanguageCount{},
	}

	// 1. Phân bố theo bugType
	cursor, err := s.entryService.Aggregate(ctx, groupPipeline(userKey, "bugType"))
	if err != nil {
		return nil, err
	}
	for cursor.Next(ctx) {
		var item dto.BugTypeCount
		if err := cursor.Decode(&item); err != nil {
			cursor.Close(ctx)
			return nil, common.ConvertMongoError(err)
		}
		data.BugTypeDistribution = append(data.BugTypeDistribution, item)
	}
	if err := cursor.Err(); err != nil {
		cursor.Close(ctx)
		return nil, common.ConvertMongoError(err)
	}
	cursor.Close(ctx)

	// 2. Phân bố theo projectName
	cursor, err = s.entryService.Aggregate(ctx, groupPipeline(userKey, "projectName"))
	if err != nil {
		return nil, err
	}
	for cursor.Next(ctx) {
		var item dto.ProjectCount
		if err := cursor.Decode(&item); err != nil {
			cursor.Close(ctx)
			return nil, common.ConvertMongoError(err)
		}
		data.BugsByProject = append(data.BugsByProject, item)
	}
	if err := cursor.Err(); err != nil {
		cursor.Close(ctx)
		return nil, common.ConvertMongoError(err)
	}
	cursor.Close(ctx)

	// 3. Phân bố theo language
	cursor, err = s.entryService.Aggregate(ctx, groupPipeline(userKey, "language"))
	if err != nil {
		return nil, err
	}
	for cursor.Next(ctx) {
		var item dto.LanguageCount
		if err := cursor.Decode(&item); err != nil {
			cursor.Close(ctx)
			return nil, common.ConvertMongoError(err)
		}
		data.BugsByLanguage = append(data.BugsByLanguage, item)
	}
	if err := cursor.Err(); err != nil {
		cursor.Close(ctx)
		return nil, common.ConvertMongoError(err)
	}
	cursor.Close(ctx)

	return data, nil
}
