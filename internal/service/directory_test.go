package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/creatorpage/internal/db"
	"github.com/creatorpage/internal/patch"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDirectoryTestDB(t *testing.T) (*Directory, *sql.DB) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	gdb, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to resolve sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewDirectory(gdb), sqlDB
}

func frozenClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestBrandCreateAppliesDefaults(t *testing.T) {
	dir, _ := setupDirectoryTestDB(t)

	brand, err := dir.Brands.Create(context.Background(), CreateBrandInput{Name: "GCX", LogoURL: "https://x/y.png"})
	if err != nil {
		t.Fatalf("create brand failed: %v", err)
	}
	if brand.ID == 0 {
		t.Fatalf("expected storage to assign an id")
	}
	if !brand.IsActive || brand.DisplayOrder != 0 {
		t.Fatalf("expected defaults is_active=true display_order=0, got %v %d", brand.IsActive, brand.DisplayOrder)
	}
	if brand.WebsiteURL != nil || brand.PartnershipType != nil {
		t.Fatalf("expected nullable fields to stay null")
	}
	if brand.CreatedAt.IsZero() || !brand.CreatedAt.Equal(brand.UpdatedAt) {
		t.Fatalf("expected created_at == updated_at on creation")
	}
}

func TestCreateKeepsExplicitFalseAndZero(t *testing.T) {
	dir, _ := setupDirectoryTestDB(t)
	ctx := context.Background()

	link, err := dir.SocialLinks.Create(ctx, CreateSocialLinkInput{
		Platform: "twitch", Username: "creator", URL: "https://twitch.tv/creator",
		IsActive: boolPtr(false), DisplayOrder: intPtr(0),
	})
	if err != nil {
		t.Fatalf("create link failed: %v", err)
	}
	if link.IsActive {
		t.Fatalf("expected explicit is_active=false to be kept")
	}

	items, err := dir.SocialLinks.ListActive(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected inactive link to be hidden, got %d items", len(items))
	}
}

func TestSocialLinkListActiveOrdering(t *testing.T) {
	dir, _ := setupDirectoryTestDB(t)
	ctx := context.Background()

	create := func(username string, order int, active bool) *db.SocialLink {
		t.Helper()
		link, err := dir.SocialLinks.Create(ctx, CreateSocialLinkInput{
			Platform: "youtube", Username: username, URL: "https://youtube.com/@" + username,
			IsActive: boolPtr(active), DisplayOrder: intPtr(order),
		})
		if err != nil {
			t.Fatalf("create link failed: %v", err)
		}
		return link
	}

	first := create("first", 1, true)
	second := create("second", 0, true)
	create("hidden", 0, false)
	tieA := create("tie-a", 2, true)
	tieB := create("tie-b", 2, true)

	for round := 0; round < 3; round++ {
		items, err := dir.SocialLinks.ListActive(ctx)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		want := []uint{second.ID, first.ID, tieA.ID, tieB.ID}
		if len(items) != len(want) {
			t.Fatalf("expected %d items, got %d", len(want), len(items))
		}
		for i, id := range want {
			if items[i].ID != id {
				t.Fatalf("round %d: position %d expected id %d, got %d", round, i, id, items[i].ID)
			}
		}
	}
}

func TestBrandUpdateClearsWebsiteURL(t *testing.T) {
	dir, _ := setupDirectoryTestDB(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	dir.SetClock(frozenClock(base))

	created, err := dir.Brands.Create(ctx, CreateBrandInput{
		Name: "HelloFresh", LogoURL: "https://cdn.example/hf.png",
		WebsiteURL: strPtr("https://hellofresh.example"), PartnershipType: strPtr("sponsor"),
	})
	if err != nil {
		t.Fatalf("create brand failed: %v", err)
	}

	dir.SetClock(frozenClock(base.Add(time.Minute)))
	updated, err := dir.Brands.Update(ctx, UpdateBrandInput{ID: created.ID, WebsiteURL: patch.Null[string]()})
	if err != nil {
		t.Fatalf("update brand failed: %v", err)
	}

	if updated.WebsiteURL != nil {
		t.Fatalf("expected website_url to be cleared, got %q", *updated.WebsiteURL)
	}
	if updated.Name != "HelloFresh" || updated.LogoURL != created.LogoURL {
		t.Fatalf("absent fields changed: %#v", updated)
	}
	if updated.PartnershipType == nil || *updated.PartnershipType != "sponsor" {
		t.Fatalf("expected partnership_type to stay unchanged")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("expected updated_at to increase: before %v after %v", created.UpdatedAt, updated.UpdatedAt)
	}
	if updated.ID != created.ID || !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("id/created_at must not change")
	}
}

func TestUpdateAppliesPresentValues(t *testing.T) {
	dir, _ := setupDirectoryTestDB(t)
	ctx := context.Background()

	created, err := dir.SocialLinks.Create(ctx, CreateSocialLinkInput{
		Platform: "x", Username: "old", URL: "https://x.com/old",
		IconURL: strPtr("https://cdn.example/x.svg"), DisplayOrder: intPtr(7),
	})
	if err != nil {
		t.Fatalf("create link failed: %v", err)
	}

	updated, err := dir.SocialLinks.Update(ctx, UpdateSocialLinkInput{
		ID:           created.ID,
		Username:     patch.Value("  new  "),
		DisplayOrder: patch.Value(0),
		IsActive:     patch.Value(false),
	})
	if err != nil {
		t.Fatalf("update link failed: %v", err)
	}

	if updated.Username != "new" {
		t.Fatalf("expected trimmed username, got %q", updated.Username)
	}
	if updated.DisplayOrder != 0 {
		t.Fatalf("display_order=0 must be written, got %d", updated.DisplayOrder)
	}
	if updated.IsActive {
		t.Fatalf("expected is_active=false")
	}
	if updated.Platform != "x" || updated.URL != "https://x.com/old" {
		t.Fatalf("absent fields changed: %#v", updated)
	}
	if updated.IconURL == nil || *updated.IconURL != "https://cdn.example/x.svg" {
		t.Fatalf("expected icon_url to stay unchanged")
	}
}

func TestUpdateWithoutFieldsStillTouchesTimestamp(t *testing.T) {
	dir, _ := setupDirectoryTestDB(t)
	ctx := context.Background()
	dir.SetClock(frozenClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))

	created, err := dir.SiteContent.Create(ctx, CreateSiteContentInput{Section: "hero", Key: "title", Value: "Hello"})
	if err != nil {
		t.Fatalf("create content failed: %v", err)
	}

	previous := created.UpdatedAt
	for i := 0; i < 3; i++ {
		updated, err := dir.SiteContent.Update(ctx, UpdateSiteContentInput{ID: created.ID})
		if err != nil {
			t.Fatalf("update content failed: %v", err)
		}
		if !updated.UpdatedAt.After(previous) {
			t.Fatalf("update %d: expected updated_at to strictly increase, %v -> %v", i, previous, updated.UpdatedAt)
		}
		if updated.Value != "Hello" {
			t.Fatalf("value changed unexpectedly: %q", updated.Value)
		}
		previous = updated.UpdatedAt
	}
}

func TestUpdateMissingIDReturnsNotFound(t *testing.T) {
	dir, _ := setupDirectoryTestDB(t)
	ctx := context.Background()

	_, err := dir.SocialLinks.Update(ctx, UpdateSocialLinkInput{ID: 99, Username: patch.Value("ghost")})
	assertNotFound(t, err, KindSocialLink, 99)

	_, err = dir.Brands.Update(ctx, UpdateBrandInput{ID: 100})
	assertNotFound(t, err, KindBrandPartnership, 100)

	_, err = dir.SiteContent.Update(ctx, UpdateSiteContentInput{ID: 101, Value: patch.Value("x")})
	assertNotFound(t, err, KindSiteContent, 101)

	items, err := dir.SiteContent.ListActive(ctx, ContentFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("not-found update must not write anything")
	}
}

func assertNotFound(t *testing.T, err error, kind Kind, id uint) {
	t.Helper()
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Kind != kind || nf.ID != id {
		t.Fatalf("expected %s %d, got %s %d", kind, id, nf.Kind, nf.ID)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected error to match ErrNotFound")
	}
}

func TestUpdateValidation(t *testing.T) {
	dir, _ := setupDirectoryTestDB(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		run   func() error
		field string
	}{
		{
			name: "null on required field",
			run: func() error {
				_, err := dir.Brands.Update(ctx, UpdateBrandInput{ID: 1, Name: patch.Null[string]()})
				return err
			},
			field: "name",
		},
		{
			name: "empty platform",
			run: func() error {
				_, err := dir.SocialLinks.Update(ctx, UpdateSocialLinkInput{ID: 1, Platform: patch.Value("   ")})
				return err
			},
			field: "platform",
		},
		{
			name: "negative display order",
			run: func() error {
				_, err := dir.SocialLinks.Update(ctx, UpdateSocialLinkInput{ID: 1, DisplayOrder: patch.Value(-1)})
				return err
			},
			field: "display_order",
		},
		{
			name: "malformed icon url",
			run: func() error {
				_, err := dir.SocialLinks.Update(ctx, UpdateSocialLinkInput{ID: 1, IconURL: patch.Value("not a url")})
				return err
			},
			field: "icon_url",
		},
		{
			name: "missing id",
			run: func() error {
				_, err := dir.SiteContent.Update(ctx, UpdateSiteContentInput{Value: patch.Value("x")})
				return err
			},
			field: "id",
		},
		{
			name: "null content value",
			run: func() error {
				_, err := dir.SiteContent.Update(ctx, UpdateSiteContentInput{ID: 1, Value: patch.Null[string]()})
				return err
			},
			field: "value",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			assertValidationField(t, err, tt.field)
		})
	}
}

func TestCreateValidationNamesEveryField(t *testing.T) {
	dir, _ := setupDirectoryTestDB(t)

	_, err := dir.SocialLinks.Create(context.Background(), CreateSocialLinkInput{URL: "nope", DisplayOrder: intPtr(-3)})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	got := map[string]string{}
	for _, f := range verr.Fields {
		got[f.Field] = f.Constraint
	}
	expected := map[string]string{
		"platform":      "required",
		"username":      "required",
		"url":           "url",
		"display_order": "gte=0",
	}
	for field, constraint := range expected {
		if got[field] != constraint {
			t.Fatalf("expected %s to fail %q, got %q (all: %v)", field, constraint, got[field], verr.Fields)
		}
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected error to match ErrInvalidInput")
	}
}

func assertValidationField(t *testing.T, err error, field string) {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, f := range verr.Fields {
		if f.Field == field {
			return
		}
	}
	t.Fatalf("expected field %q in %v", field, verr.Fields)
}

func TestSiteContentFilters(t *testing.T) {
	dir, _ := setupDirectoryTestDB(t)
	ctx := context.Background()

	seed := []CreateSiteContentInput{
		{Section: "about", Key: "bio", Value: "Streamer", IsActive: boolPtr(true)},
		{Section: "hero", Key: "title", Value: "Welcome", ContentType: strPtr("html")},
		{Section: "about", Key: "old-bio", Value: "Old", IsActive: boolPtr(false)},
		{Section: "hero", Key: "draft", Value: "Draft", IsActive: boolPtr(false)},
		{Section: "about", Key: "bio", Value: "Duplicate key"},
	}
	for _, input := range seed {
		if _, err := dir.SiteContent.Create(ctx, input); err != nil {
			t.Fatalf("create content failed: %v", err)
		}
	}

	keys := func(filter ContentFilter) []string {
		t.Helper()
		items, err := dir.SiteContent.ListActive(ctx, filter)
		if err != nil {
			t.Fatalf("list content failed: %v", err)
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			out = append(out, item.Section+"/"+item.Key)
		}
		return out
	}

	cases := []struct {
		name   string
		filter ContentFilter
		want   []string
	}{
		{name: "no filter", filter: ContentFilter{}, want: []string{"about/bio", "hero/title", "about/old-bio", "hero/draft", "about/bio"}},
		{name: "section only", filter: ContentFilter{Section: strPtr("hero")}, want: []string{"hero/title", "hero/draft"}},
		{name: "active about", filter: ContentFilter{Section: strPtr("about"), IsActive: boolPtr(true)}, want: []string{"about/bio", "about/bio"}},
		{name: "inactive hero", filter: ContentFilter{Section: strPtr("hero"), IsActive: boolPtr(false)}, want: []string{"hero/draft"}},
		{name: "active only", filter: ContentFilter{IsActive: boolPtr(true)}, want: []string{"about/bio", "hero/title", "about/bio"}},
		{name: "unmatched", filter: ContentFilter{Section: strPtr("merch")}, want: []string{}},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got := keys(tt.filter)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSiteContentDefaultsContentType(t *testing.T) {
	dir, _ := setupDirectoryTestDB(t)

	content, err := dir.SiteContent.Create(context.Background(), CreateSiteContentInput{Section: "merch", Key: "store", Value: ""})
	if err != nil {
		t.Fatalf("create content failed: %v", err)
	}
	if content.ContentType != db.ContentTypeText || !content.IsActive {
		t.Fatalf("expected text/active defaults, got %q %v", content.ContentType, content.IsActive)
	}

	custom, err := dir.SiteContent.Create(context.Background(), CreateSiteContentInput{Section: "merch", Key: "embed", Value: "<b>x</b>", ContentType: strPtr("markdown")})
	if err != nil {
		t.Fatalf("create content failed: %v", err)
	}
	if custom.ContentType != "markdown" {
		t.Fatalf("content_type must accept unknown tags, got %q", custom.ContentType)
	}
}

func TestContactCreateIsAlwaysPending(t *testing.T) {
	dir, _ := setupDirectoryTestDB(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	dir.SetClock(frozenClock(base))
	first, err := dir.Contacts.Create(ctx, CreateContactInput{
		Name: "Ann", Email: "ann@example.com", Subject: "Collab", Message: "Hi!",
		IPAddress: strPtr("203.0.113.7"), UserAgent: strPtr(""),
	})
	if err != nil {
		t.Fatalf("create submission failed: %v", err)
	}
	if first.Status != db.ContactStatusPending {
		t.Fatalf("expected pending status, got %q", first.Status)
	}
	if first.IPAddress == nil || *first.IPAddress != "203.0.113.7" {
		t.Fatalf("expected ip address to be stored verbatim")
	}
	if first.UserAgent == nil || *first.UserAgent != "" {
		t.Fatalf("expected blank user agent to be stored as supplied, got %v", first.UserAgent)
	}

	dir.SetClock(frozenClock(base.Add(time.Hour)))
	second, err := dir.Contacts.Create(ctx, CreateContactInput{Name: "Bob", Email: "bob@example.com", Subject: "Merch", Message: "Question"})
	if err != nil {
		t.Fatalf("create submission failed: %v", err)
	}

	items, err := dir.Contacts.ListAll(ctx)
	if err != nil {
		t.Fatalf("list submissions failed: %v", err)
	}
	if len(items) != 2 || items[0].ID != second.ID || items[1].ID != first.ID {
		t.Fatalf("expected newest submission first, got %#v", items)
	}
}

func TestContactValidation(t *testing.T) {
	dir, _ := setupDirectoryTestDB(t)

	_, err := dir.Contacts.Create(context.Background(), CreateContactInput{
		Name: "Ann", Email: "not-an-email", Subject: "Hi", Message: strings.Repeat("a", 2001),
	})
	assertValidationField(t, err, "email")
	assertValidationField(t, err, "message")
}

func TestStorageFailureIsWrapped(t *testing.T) {
	dir, sqlDB := setupDirectoryTestDB(t)
	sqlDB.Close()

	_, err := dir.Brands.ListActive(context.Background())
	var serr *StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("expected StorageError, got %v", err)
	}
	if serr.Kind != KindBrandPartnership || serr.Op != "list" {
		t.Fatalf("unexpected storage error details: %#v", serr)
	}
	if !errors.Is(err, ErrStorage) {
		t.Fatalf("expected error to match ErrStorage")
	}
}

func TestProfileGroupsActiveContent(t *testing.T) {
	dir, _ := setupDirectoryTestDB(t)
	ctx := context.Background()

	if _, err := dir.SocialLinks.Create(ctx, CreateSocialLinkInput{Platform: "twitch", Username: "c", URL: "https://twitch.tv/c"}); err != nil {
		t.Fatalf("create link failed: %v", err)
	}
	if _, err := dir.Brands.Create(ctx, CreateBrandInput{Name: "GCX", LogoURL: "https://x/y.png", IsActive: boolPtr(false)}); err != nil {
		t.Fatalf("create brand failed: %v", err)
	}
	for _, input := range []CreateSiteContentInput{
		{Section: "hero", Key: "title", Value: "Hi"},
		{Section: "about", Key: "bio", Value: "Bio"},
		{Section: "hero", Key: "hidden", Value: "x", IsActive: boolPtr(false)},
	} {
		if _, err := dir.SiteContent.Create(ctx, input); err != nil {
			t.Fatalf("create content failed: %v", err)
		}
	}

	profile, err := dir.Profile(ctx)
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if len(profile.SocialLinks) != 1 || len(profile.Brands) != 0 {
		t.Fatalf("unexpected profile lists: %d links, %d brands", len(profile.SocialLinks), len(profile.Brands))
	}
	if len(profile.Content["hero"]) != 1 || len(profile.Content["about"]) != 1 {
		t.Fatalf("expected only active content grouped by section, got %#v", profile.Content)
	}
}

func boolPtr(v bool) *bool {
	return &v
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}
