// Package places implements location search over a seeded catalog. The
// catalog stands in for a geocoding provider and keeps lookups deterministic.
package places

import (
	"context"
	"strings"

	"bookmycar/internal/booking-service/core/domain/model"
	"bookmycar/internal/booking-service/core/ports/driven"
)

const DefaultLimit = 8

type StaticSearch struct {
	catalog []model.Location
}

func NewStaticSearch() driven.IPlaceSearch {
	return &StaticSearch{catalog: catalog}
}

// Search matches the query case-insensitively against label and subtitle.
// Label prefix matches rank before other label matches, which rank before
// subtitle-only matches. An empty query returns nothing.
func (ss *StaticSearch) Search(ctx context.Context, query string, limit int) ([]model.Location, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	var prefix, label, subtitle []model.Location
	for _, loc := range ss.catalog {
		lower := strings.ToLower(loc.Label)
		switch {
		case strings.HasPrefix(lower, query):
			prefix = append(prefix, loc)
		case strings.Contains(lower, query):
			label = append(label, loc)
		case strings.Contains(strings.ToLower(loc.Subtitle), query):
			subtitle = append(subtitle, loc)
		}
	}

	ranked := append(prefix, label...)
	ranked = append(ranked, subtitle...)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

var catalog = []model.Location{
	{Latitude: 19.9989, Longitude: 73.7677, Label: "Lokmat Square", Subtitle: "Tilak Road, Nashik"},
	{Latitude: 19.9975, Longitude: 73.7898, Label: "Nashik Road Railway Station", Subtitle: "Nashik Road, Nashik"},
	{Latitude: 20.0112, Longitude: 73.7909, Label: "College Road", Subtitle: "Canada Corner, Nashik"},
	{Latitude: 19.9615, Longitude: 73.8307, Label: "Sula Vineyards", Subtitle: "Gangapur-Savargaon Road, Nashik"},
	{Latitude: 19.0896, Longitude: 72.8656, Label: "Mumbai Airport Terminal 2", Subtitle: "Chhatrapati Shivaji Maharaj International Airport"},
	{Latitude: 18.9402, Longitude: 72.8356, Label: "Gateway of India", Subtitle: "Apollo Bandar, Colaba, Mumbai"},
	{Latitude: 19.0176, Longitude: 72.8562, Label: "Dadar Railway Station", Subtitle: "Dadar West, Mumbai"},
	{Latitude: 18.9220, Longitude: 72.8347, Label: "Colaba Causeway", Subtitle: "Shahid Bhagat Singh Road, Mumbai"},
	{Latitude: 19.1136, Longitude: 72.8697, Label: "Phoenix Marketcity", Subtitle: "Kurla West, Mumbai"},
	{Latitude: 18.5204, Longitude: 73.8567, Label: "Pune City Centre", Subtitle: "Shivajinagar, Pune"},
	{Latitude: 18.5913, Longitude: 73.7389, Label: "Hinjawadi IT Park", Subtitle: "Phase 1, Hinjawadi, Pune"},
	{Latitude: 18.5621, Longitude: 73.9187, Label: "Pune Airport", Subtitle: "Lohegaon, Pune"},
	{Latitude: 19.2183, Longitude: 72.9781, Label: "Thane Railway Station", Subtitle: "Thane West, Thane"},
	{Latitude: 19.0330, Longitude: 73.0297, Label: "Vashi Plaza", Subtitle: "Sector 17, Vashi, Navi Mumbai"},
	{Latitude: 19.9307, Longitude: 73.7314, Label: "Trimbakeshwar Temple", Subtitle: "Trimbak, Nashik"},
}
