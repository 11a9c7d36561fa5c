package filterstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BikeRental/internal/domain"
)

func TestToggle_AddsAndRemoves(t *testing.T) {
	s := New()

	require.NoError(t, s.Toggle(domain.CategoryTransmission, "automatic"))
	assert.Equal(t, []string{"automatic"}, s.Snapshot().Transmission)

	require.NoError(t, s.Toggle(domain.CategoryTransmission, "automatic"))
	assert.Empty(t, s.Snapshot().Transmission)
}

func TestToggle_PreservesInsertionOrder(t *testing.T) {
	s := New()

	for _, b := range []string{"Honda", "Yamaha", "Suzuki"} {
		require.NoError(t, s.Toggle(domain.CategoryBrand, b))
	}
	require.NoError(t, s.Toggle(domain.CategoryBrand, "Yamaha"))

	assert.Equal(t, []string{"Honda", "Suzuki"}, s.Snapshot().Brand)
}

func TestToggle_DurationReplaces(t *testing.T) {
	s := New()

	require.NoError(t, s.Toggle(domain.CategoryDuration, "7days"))
	assert.Equal(t, domain.Package7Days, s.Snapshot().Package)

	// a second "toggle" of the same package keeps it selected
	require.NoError(t, s.Toggle(domain.CategoryDuration, "7days"))
	assert.Equal(t, domain.Package7Days, s.Snapshot().Package)

	require.NoError(t, s.Toggle(domain.CategoryDuration, "Monthly"))
	assert.Equal(t, domain.PackageMonthly, s.Snapshot().Package)
}

func TestToggle_Errors(t *testing.T) {
	s := New()

	assert.ErrorIs(t, s.Toggle(domain.CategoryBranch, "  "), ErrEmptyValue)
	assert.ErrorIs(t, s.Toggle("colour", "red"), ErrUnknownCategory)
	assert.ErrorIs(t, s.Toggle(domain.CategoryDuration, "forever"), domain.ErrUnknownPackage)
	assert.ErrorIs(t, s.SetPackage("forever"), domain.ErrUnknownPackage)
}

func TestSnapshot_IsIsolated(t *testing.T) {
	s := New()
	require.NoError(t, s.Toggle(domain.CategoryBranch, "Gulshan"))

	snap := s.Snapshot()
	snap.Branch[0] = "Mirpur"

	assert.Equal(t, []string{"Gulshan"}, s.Snapshot().Branch)
}

func TestSubscribe(t *testing.T) {
	s := New()

	var calls []domain.FilterState
	unsubscribe := s.Subscribe(func(st domain.FilterState) { calls = append(calls, st) })

	require.NoError(t, s.Toggle(domain.CategoryBranch, "Gulshan"))
	require.NoError(t, s.SetPackage(domain.PackageYearly))

	require.Len(t, calls, 2)
	assert.Equal(t, []string{"Gulshan"}, calls[1].Branch)
	assert.Equal(t, domain.PackageYearly, calls[1].Package)

	unsubscribe()
	require.NoError(t, s.Toggle(domain.CategoryBranch, "Gulshan"))
	assert.Len(t, calls, 2)
}

func TestRestore_FallsBackToDailyPackage(t *testing.T) {
	s := Restore(domain.FilterState{Package: "bogus"})
	assert.Equal(t, domain.PackageDaily, s.Snapshot().Package)
	assert.NotNil(t, s.Snapshot().Brand)
}
