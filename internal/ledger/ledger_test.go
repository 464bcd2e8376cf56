package ledger

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/KirkDiggler/siptally/internal/guidelines"
	"github.com/KirkDiggler/siptally/internal/ledger/mocks"
	"github.com/KirkDiggler/siptally/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LedgerTestSuite struct {
	suite.Suite
	ledger  *Ledger
	testNow time.Time
	nextID  int
}

func (s *LedgerTestSuite) SetupTest() {
	catalog, err := guidelines.New(nil)
	s.Require().NoError(err)

	l, err := New(&Config{Catalog: catalog})
	s.Require().NoError(err)
	s.ledger = l

	s.testNow = time.Date(2025, 6, 14, 18, 0, 0, 0, time.UTC)
	s.nextID = 0
}

func TestLedgerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func (s *LedgerTestSuite) newID() string {
	s.nextID++
	return fmt.Sprintf("entry-%d", s.nextID)
}

func (s *LedgerTestSuite) beer(percentage, style string) *models.BeverageEntry {
	return &models.BeverageEntry{
		ID:                s.newID(),
		Category:          models.CategoryBeer,
		VolumeML:          models.BeerVolumeML,
		Timestamp:         s.testNow,
		ProductName:       "Test Beer",
		AlcoholPercentage: percentage,
		Style:             style,
	}
}

func (s *LedgerTestSuite) plain(category models.Category) *models.BeverageEntry {
	return &models.BeverageEntry{
		ID:        s.newID(),
		Category:  category,
		VolumeML:  category.VolumeML(),
		Timestamp: s.testNow,
	}
}

func (s *LedgerTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilCatalog)
}

func (s *LedgerTestSuite) TestAppendPreservesOrder() {
	first := s.plain(models.CategoryWine)
	second := s.beer("4.1%", "Lager")
	third := s.plain(models.CategorySpirits)

	for _, entry := range []*models.BeverageEntry{first, second, third} {
		_, err := s.ledger.Append(entry, models.ProfileA)
		s.Require().NoError(err)
	}

	entries := s.ledger.Entries()
	s.Require().Len(entries, 3)
	s.Equal(first.ID, entries[0].ID)
	s.Equal(second.ID, entries[1].ID)
	s.Equal(third.ID, entries[2].ID)
}

func (s *LedgerTestSuite) TestTotalVolumeIsAdditive() {
	entries := []*models.BeverageEntry{
		s.plain(models.CategoryWine),
		s.beer("5.0%", "Pilsner"),
		s.plain(models.CategorySpirits),
		{ID: s.newID(), Category: models.CategoryBeer, VolumeML: models.BeerVolumeML, Timestamp: s.testNow},
	}

	for _, entry := range entries {
		before := s.ledger.TotalVolume()
		_, err := s.ledger.Append(entry, models.ProfileB)
		s.Require().NoError(err)
		s.Equal(before+entry.VolumeML, s.ledger.TotalVolume())
	}

	s.Equal(150+330+45+330, s.ledger.TotalVolume())
}

func (s *LedgerTestSuite) TestNonBeerReturnsNoResult() {
	result, err := s.ledger.Append(s.plain(models.CategoryWine), models.ProfileA)
	s.Require().NoError(err)
	s.Nil(result)
}

func (s *LedgerTestSuite) TestProductWithoutPercentageClassifiesByStyle() {
	entry := s.beer("", "Stout")

	result, err := s.ledger.Append(entry, models.ProfileB)
	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.Equal(models.BucketStoutDark, result.Bucket)
	s.Equal(330, result.ActualML)
	s.True(result.Crossed)

	summary := s.ledger.Summary()
	s.Equal(330, summary.BucketML[models.BucketStoutDark])
	s.Zero(summary.UnclassifiedBeerML)
}

func (s *LedgerTestSuite) TestUnknownProductBeerIsNotClassified() {
	entry := &models.BeverageEntry{
		ID:        s.newID(),
		Category:  models.CategoryBeer,
		VolumeML:  models.BeerVolumeML,
		Timestamp: s.testNow,
	}

	result, err := s.ledger.Append(entry, models.ProfileA)
	s.Require().NoError(err)
	s.Nil(result)

	summary := s.ledger.Summary()
	s.Equal(330, summary.TotalML)
	s.Equal(330, summary.UnclassifiedBeerML)
	s.Empty(summary.BucketML)
}

func (s *LedgerTestSuite) TestGapBeerIsUnclassified() {
	result, err := s.ledger.Append(s.beer("5.5–7.0%", "Amber"), models.ProfileA)
	s.Require().NoError(err)
	s.Nil(result)
	s.Equal(1, s.ledger.Len())
}

func (s *LedgerTestSuite) TestCrossingReportedOnFirstExceedingAppend() {
	// ProfileB light lager limit is 400 ml
	result, err := s.ledger.Append(s.beer("4.1%", "Lager"), models.ProfileB)
	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.False(result.Crossed)
	s.Equal(models.BucketLightLager, result.Bucket)
	s.Equal(330, result.ActualML)
	s.Equal(400, result.LimitML)

	result, err = s.ledger.Append(s.beer("4.2%", "Lager"), models.ProfileB)
	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.True(result.Crossed)
	s.Equal(660, result.ActualML)
	s.Equal(400, result.LimitML)
	s.Equal(models.ProfileB, result.Profile)
}

func (s *LedgerTestSuite) TestReachingLimitExactlyIsNotCrossed() {
	// ProfileB regular lager limit is 330 ml
	result, err := s.ledger.Append(s.beer("5.0%", "Pilsner"), models.ProfileB)
	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.False(result.Crossed)
	s.Equal(330, result.ActualML)
	s.Equal(330, result.LimitML)
}

func (s *LedgerTestSuite) TestProfilesUseTheirOwnLimits() {
	_, err := s.ledger.Append(s.beer("4.1%", "Lager"), models.ProfileA)
	s.Require().NoError(err)
	_, err = s.ledger.Append(s.beer("4.1%", "Lager"), models.ProfileA)
	s.Require().NoError(err)

	resultA, err := s.ledger.Evaluate(models.BucketLightLager, models.ProfileA)
	s.Require().NoError(err)
	s.True(resultA.Crossed)
	s.Equal(600, resultA.LimitML)

	resultB, err := s.ledger.Evaluate(models.BucketLightLager, models.ProfileB)
	s.Require().NoError(err)
	s.True(resultB.Crossed)
	s.Equal(400, resultB.LimitML)
}

func (s *LedgerTestSuite) TestAlcoholFreeNeverCrosses() {
	for i := 0; i < 10; i++ {
		result, err := s.ledger.Append(s.beer("Alcohol-free", "Lager"), models.ProfileB)
		s.Require().NoError(err)
		s.Require().NotNil(result)
		s.False(result.Crossed)
		s.Equal(models.NoLimit, result.LimitML)
		s.Equal(models.BucketAlcoholFree, result.Bucket)
	}

	s.Equal(3300, s.ledger.BucketVolume(models.BucketAlcoholFree))
}

func (s *LedgerTestSuite) TestOnlyAppendedBucketIsEvaluated() {
	_, err := s.ledger.Append(s.beer("5.0%", "Pilsner"), models.ProfileA)
	s.Require().NoError(err)
	_, err = s.ledger.Append(s.beer("5.0%", "Pilsner"), models.ProfileA)
	s.Require().NoError(err)

	// regular lager is now over its limit but only the stout bucket is checked
	result, err := s.ledger.Append(s.beer("6.5%", "Stout"), models.ProfileA)
	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.Equal(models.BucketStoutDark, result.Bucket)
	s.False(result.Crossed)
}

func (s *LedgerTestSuite) TestRemoveCancelsContribution() {
	keep := s.beer("4.1%", "Lager")
	drop := s.beer("4.5%", "Pilsner")
	wine := s.plain(models.CategoryWine)

	for _, entry := range []*models.BeverageEntry{keep, drop, wine} {
		_, err := s.ledger.Append(entry, models.ProfileA)
		s.Require().NoError(err)
	}

	before := s.ledger.Summary()
	s.Equal(660, before.BucketML[models.BucketLightLager])

	s.True(s.ledger.Remove(drop.ID))

	after := s.ledger.Summary()
	s.Equal(before.BucketML[models.BucketLightLager]-drop.VolumeML, after.BucketML[models.BucketLightLager])
	s.Equal(before.TotalML-drop.VolumeML, after.TotalML)
	s.Equal(2, after.EntryCount)

	_, found := s.ledger.Get(drop.ID)
	s.False(found)
}

func (s *LedgerTestSuite) TestRemoveBeforeAppendUsesNewTotal() {
	first := s.beer("4.1%", "Lager")
	_, err := s.ledger.Append(first, models.ProfileB)
	s.Require().NoError(err)

	s.True(s.ledger.Remove(first.ID))

	result, err := s.ledger.Append(s.beer("4.1%", "Lager"), models.ProfileB)
	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.False(result.Crossed)
	s.Equal(330, result.ActualML)
}

func (s *LedgerTestSuite) TestRemoveUnknownIsNoop() {
	_, err := s.ledger.Append(s.plain(models.CategorySpirits), models.ProfileA)
	s.Require().NoError(err)

	s.False(s.ledger.Remove("missing"))
	s.Equal(1, s.ledger.Len())
	s.Equal(45, s.ledger.TotalVolume())
}

func (s *LedgerTestSuite) TestEvaluateIsIdempotent() {
	_, err := s.ledger.Append(s.beer("6.5%", "Bock"), models.ProfileA)
	s.Require().NoError(err)
	_, err = s.ledger.Append(s.beer("6.8%", "Bock"), models.ProfileA)
	s.Require().NoError(err)

	first, err := s.ledger.Evaluate(models.BucketStrongLager, models.ProfileA)
	s.Require().NoError(err)
	second, err := s.ledger.Evaluate(models.BucketStrongLager, models.ProfileA)
	s.Require().NoError(err)

	s.Equal(first, second)
	s.True(first.Crossed)
}

func (s *LedgerTestSuite) TestProfileRequired() {
	entry := s.beer("4.1%", "Lager")
	_, err := s.ledger.Append(entry, models.ProfileUnset)
	s.ErrorIs(err, ErrProfileRequired)
	s.Equal(0, s.ledger.Len())

	_, err = s.ledger.Evaluate(models.BucketLightLager, models.ProfileUnset)
	s.ErrorIs(err, ErrProfileRequired)
}

func (s *LedgerTestSuite) TestAppendValidation() {
	_, err := s.ledger.Append(nil, models.ProfileA)
	s.ErrorIs(err, ErrNilEntry)

	noID := s.plain(models.CategoryWine)
	noID.ID = ""
	_, err = s.ledger.Append(noID, models.ProfileA)
	s.ErrorIs(err, ErrEmptyEntryID)

	badCategory := s.plain(models.CategoryWine)
	badCategory.Category = models.Category("cider")
	_, err = s.ledger.Append(badCategory, models.ProfileA)
	s.ErrorIs(err, ErrInvalidCategory)

	badVolume := s.plain(models.CategoryWine)
	badVolume.VolumeML = 500
	_, err = s.ledger.Append(badVolume, models.ProfileA)
	s.ErrorIs(err, ErrInvalidVolume)

	wineWithStyle := s.plain(models.CategoryWine)
	wineWithStyle.Style = "Riesling"
	_, err = s.ledger.Append(wineWithStyle, models.ProfileA)
	s.ErrorIs(err, ErrUnexpectedBeer)

	s.Equal(0, s.ledger.Len())
}

func (s *LedgerTestSuite) TestDuplicateIDRejected() {
	entry := s.plain(models.CategoryWine)
	_, err := s.ledger.Append(entry, models.ProfileA)
	s.Require().NoError(err)

	_, err = s.ledger.Append(entry, models.ProfileA)
	s.ErrorIs(err, ErrDuplicateEntryID)
	s.Equal(1, s.ledger.Len())
}

func (s *LedgerTestSuite) TestIDIndexFollowsRemoval() {
	for i := 0; i < 50; i++ {
		_, err := s.ledger.Append(s.plain(models.CategorySpirits), models.ProfileA)
		s.Require().NoError(err)
	}
	s.Len(s.ledger.ids, 50)

	s.True(s.ledger.Remove("entry-10"))
	s.Len(s.ledger.ids, 49)
	s.False(s.ledger.Remove("entry-10"))

	// A removed ID is free again
	reused := s.plain(models.CategoryWine)
	reused.ID = "entry-10"
	_, err := s.ledger.Append(reused, models.ProfileA)
	s.Require().NoError(err)

	_, err = s.ledger.Append(reused, models.ProfileA)
	s.ErrorIs(err, ErrDuplicateEntryID)
	s.Equal(50, s.ledger.Len())
	s.Len(s.ledger.ids, 50)
}

func (s *LedgerTestSuite) TestEntriesAreCopies() {
	entry := s.beer("4.1%", "Lager")
	_, err := s.ledger.Append(entry, models.ProfileA)
	s.Require().NoError(err)

	entry.VolumeML = 1000
	entries := s.ledger.Entries()
	entries[0].VolumeML = 2000

	s.Equal(330, s.ledger.TotalVolume())
}

func TestEvaluatePropagatesLimitError(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockCatalog(ctrl)

	l, err := New(&Config{Catalog: catalog})
	if err != nil {
		t.Fatal(err)
	}

	limitErr := errors.New("boom")
	catalog.EXPECT().Limit(models.BucketWheatBeer, models.ProfileA).Return(0, limitErr)

	_, err = l.Evaluate(models.BucketWheatBeer, models.ProfileA)
	if !errors.Is(err, limitErr) {
		t.Fatalf("expected wrapped limit error, got %v", err)
	}
}

func TestAppendEvaluatesClassifiedBucket(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockCatalog(ctrl)

	l, err := New(&Config{Catalog: catalog})
	if err != nil {
		t.Fatal(err)
	}

	catalog.EXPECT().Classify("5.3%", "Wheat").Return(models.BucketWheatBeer, true).AnyTimes()
	catalog.EXPECT().Limit(models.BucketWheatBeer, models.ProfileA).Return(300, nil)

	result, err := l.Append(&models.BeverageEntry{
		ID:                "wheat-1",
		Category:          models.CategoryBeer,
		ProductName:       "House Wheat",
		VolumeML:          models.BeerVolumeML,
		AlcoholPercentage: "5.3%",
		Style:             "Wheat",
	}, models.ProfileA)
	if err != nil {
		t.Fatal(err)
	}

	if !result.Crossed || result.ActualML != 330 || result.LimitML != 300 {
		t.Fatalf("unexpected result %+v", result)
	}
}
