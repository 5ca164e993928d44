package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"bookmycar/internal/booking-service/adapters/driven/memdb"
	"bookmycar/internal/booking-service/core/domain/dto"
	"bookmycar/internal/booking-service/core/domain/model"
	"bookmycar/internal/booking-service/core/myerrors"
	"bookmycar/internal/booking-service/core/ports/driven"
	"bookmycar/internal/booking-service/core/ports/driver"
)

func newTestHistoryService(t *testing.T) (driver.IHistoryService, driven.IBookingRepo) {
	t.Helper()
	repo := memdb.NewBookingRepo()
	return NewHistoryService(context.Background(), repo, testLogger()), repo
}

func seedBooking(t *testing.T, repo driven.IBookingRepo, id string, createdAt time.Time, favorite bool) {
	t.Helper()
	err := repo.Create(context.Background(), model.Booking{
		ID:           id,
		UserID:       testUser,
		Pickup:       sanFrancisco,
		Destination:  oakland,
		VehicleClass: model.VehicleMini,
		IsFavorite:   favorite,
		CreatedAt:    createdAt,
	})
	if err != nil {
		t.Fatalf("seed booking %s: %v", id, err)
	}
}

func TestHistoryMostRecentFirst(t *testing.T) {
	hs, repo := newTestHistoryService(t)
	base := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	seedBooking(t, repo, "b1", base, false)
	seedBooking(t, repo, "b2", base.Add(2*time.Hour), false)
	seedBooking(t, repo, "b3", base.Add(time.Hour), false)

	res, err := hs.List(context.Background(), testUser, dto.HistoryQuery{Filter: dto.HistoryFilterAll, GroupBy: dto.HistoryGroupNone})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	wantOrder := []string{"b2", "b3", "b1"}
	if len(res.Bookings) != len(wantOrder) {
		t.Fatalf("got %d bookings, want %d", len(res.Bookings), len(wantOrder))
	}
	for i, want := range wantOrder {
		if res.Bookings[i].ID != want {
			t.Errorf("position %d: got %s, want %s", i, res.Bookings[i].ID, want)
		}
	}
}

func TestHistoryFavoritesFilter(t *testing.T) {
	hs, repo := newTestHistoryService(t)
	base := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	seedBooking(t, repo, "b1", base, true)
	seedBooking(t, repo, "b2", base.Add(time.Hour), false)
	seedBooking(t, repo, "b3", base.Add(2*time.Hour), true)

	res, err := hs.List(context.Background(), testUser, dto.HistoryQuery{Filter: dto.HistoryFilterFavorites})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(res.Bookings) != 2 {
		t.Fatalf("got %d bookings, want 2", len(res.Bookings))
	}
	if res.Bookings[0].ID != "b3" || res.Bookings[1].ID != "b1" {
		t.Errorf("got [%s %s], want [b3 b1]", res.Bookings[0].ID, res.Bookings[1].ID)
	}
}

func TestHistoryGroupedByDay(t *testing.T) {
	hs, repo := newTestHistoryService(t)

	seedBooking(t, repo, "old", time.Date(2026, time.March, 8, 22, 0, 0, 0, time.UTC), false)
	seedBooking(t, repo, "mid", time.Date(2026, time.March, 9, 8, 0, 0, 0, time.UTC), false)
	seedBooking(t, repo, "new", time.Date(2026, time.March, 9, 19, 30, 0, 0, time.UTC), false)

	res, err := hs.List(context.Background(), testUser, dto.HistoryQuery{Filter: dto.HistoryFilterAll, GroupBy: dto.HistoryGroupDay})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(res.Groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(res.Groups))
	}
	if res.Groups[0].Day != "Mar 09, 2026" {
		t.Errorf("first group day = %q, want %q", res.Groups[0].Day, "Mar 09, 2026")
	}
	if res.Groups[1].Day != "Mar 08, 2026" {
		t.Errorf("second group day = %q, want %q", res.Groups[1].Day, "Mar 08, 2026")
	}
	if len(res.Groups[0].Bookings) != 2 || res.Groups[0].Bookings[0].ID != "new" {
		t.Errorf("first group = %+v, want [new mid]", res.Groups[0].Bookings)
	}
}

func TestToggleFavoriteRoundTrip(t *testing.T) {
	hs, repo := newTestHistoryService(t)
	ctx := context.Background()

	seedBooking(t, repo, "b1", time.Now(), false)

	fav, err := hs.ToggleFavorite(ctx, testUser, "b1")
	if err != nil {
		t.Fatalf("ToggleFavorite: %v", err)
	}
	if !fav {
		t.Error("first toggle did not set the flag")
	}

	fav, err = hs.ToggleFavorite(ctx, testUser, "b1")
	if err != nil {
		t.Fatalf("second ToggleFavorite: %v", err)
	}
	if fav {
		t.Error("second toggle did not clear the flag")
	}
}

func TestToggleFavoriteUnknownBooking(t *testing.T) {
	hs, _ := newTestHistoryService(t)

	_, err := hs.ToggleFavorite(context.Background(), testUser, "missing")
	if !errors.Is(err, myerrors.ErrBookingNotFound) {
		t.Errorf("got %v, want ErrBookingNotFound", err)
	}
}

func TestDeleteMissingBookingIsSilent(t *testing.T) {
	hs, _ := newTestHistoryService(t)

	if err := hs.Delete(context.Background(), testUser, "missing"); err != nil {
		t.Errorf("Delete of missing id returned %v, want nil", err)
	}
}

func TestDeleteRemovesBooking(t *testing.T) {
	hs, repo := newTestHistoryService(t)
	ctx := context.Background()

	seedBooking(t, repo, "b1", time.Now(), false)
	if err := hs.Delete(ctx, testUser, "b1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	res, err := hs.List(ctx, testUser, dto.HistoryQuery{Filter: dto.HistoryFilterAll})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(res.Bookings) != 0 {
		t.Errorf("got %d bookings, want 0", len(res.Bookings))
	}
}
