package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupBikes(t *testing.T) {
	bikes := []Bike{
		{ID: 1, Name: "Honda Dio", Type: "automatic", City: "Dhaka", Area: "Gulshan"},
		{ID: 2, Name: "Yamaha FZ", Type: "gear", City: "Dhaka", Area: "Banani"},
		{ID: 3, Name: "Honda Dio", Type: "automatic", City: "Dhaka", Area: "Banani"},
		{ID: 4, Name: "Honda Dio", Type: "automatic", City: "Dhaka", Area: "Gulshan"},
	}

	groups := GroupBikes(bikes)

	require.Len(t, groups, 2)
	assert.Equal(t, int64(1), groups[0].Bike.ID)
	assert.Equal(t, []Location{
		{City: "Dhaka", Area: "Gulshan"},
		{City: "Dhaka", Area: "Banani"},
	}, groups[0].Locations)
	assert.Equal(t, "Yamaha FZ", groups[1].Bike.Name)
	assert.True(t, groups[0].HasArea("banani"))
	assert.False(t, groups[1].HasArea("gulshan"))
}

func TestBike_Quote(t *testing.T) {
	b := Bike{DayPrice: 500, SevenDayPrice: 450, FifteenDayPrice: 400, MonthPrice: 300, Limit: 120}

	q := b.Quote(Package7Days)
	assert.Equal(t, 450.0, q.PricePerDay)
	assert.Equal(t, 7, q.Days)
	assert.Equal(t, 3150.0, q.Total)
	assert.Equal(t, 120, q.KmIncluded)

	assert.Equal(t, 500.0, b.Quote(PackageDaily).Total)
	assert.Equal(t, 300.0*90, b.Quote(Package3Months).Total)
}
