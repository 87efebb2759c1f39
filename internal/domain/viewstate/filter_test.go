package viewstate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
	"github.com/zatekoja/healthapp/backend/internal/domain/viewstate"
)

func sampleOrders() []entities.Order {
	return []entities.Order{
		{ID: "1", OrderNumber: "ORD-2024-001", Items: 3, Total: 450.50, Status: entities.OrderStatusDelivered, TrackingID: "TRK123456789"},
		{ID: "2", OrderNumber: "ORD-2024-002", Items: 2, Total: 320.00, Status: entities.OrderStatusShipped, TrackingID: "TRK987654321"},
		{ID: "3", OrderNumber: "ORD-2024-003", Items: 1, Total: 125.00, Status: entities.OrderStatusProcessing},
		{ID: "4", OrderNumber: "ORD-2024-004", Items: 5, Total: 680.00, Status: entities.OrderStatusCancelled},
	}
}

func sampleLocations() []entities.Location {
	return []entities.Location{
		{ID: "1", Name: "Satyanarayan Township", Address: "Ajwa Road, Vadodara", Distance: "2.5 km"},
		{ID: "2", Name: "Alkapuri", Address: "RC Dutt Road, Vadodara", Distance: "4.1 km"},
		{ID: "3", Name: "Fatehgunj", Address: "Near Sayaji Gunj, Vadodara", Distance: "5.3 km"},
	}
}

func TestFilterOrders_ProcessingIncludesShipped(t *testing.T) {
	result := viewstate.FilterOrders(sampleOrders(), viewstate.OrderTabProcessing)

	require.Len(t, result, 2)
	assert.Equal(t, entities.OrderStatusShipped, result[0].Status)
	assert.Equal(t, entities.OrderStatusProcessing, result[1].Status)
}

func TestFilterOrders_Tabs(t *testing.T) {
	orders := sampleOrders()

	assert.Len(t, viewstate.FilterOrders(orders, viewstate.OrderTabAll), 4)
	assert.Len(t, viewstate.FilterOrders(orders, viewstate.OrderTabDelivered), 1)

	unknown := viewstate.FilterOrders(orders, viewstate.OrderTab("returned"))
	assert.NotNil(t, unknown)
	assert.Empty(t, unknown)

	assert.Equal(t, map[viewstate.OrderTab]int{
		viewstate.OrderTabAll:        4,
		viewstate.OrderTabProcessing: 2,
		viewstate.OrderTabDelivered:  1,
	}, viewstate.OrderTabCounts(orders))
}

func TestFilterOrders_Completeness(t *testing.T) {
	orders := sampleOrders()

	for _, tab := range viewstate.OrderTabs() {
		result := viewstate.FilterOrders(orders, tab)
		kept := map[string]bool{}
		for _, o := range result {
			assert.True(t, viewstate.InOrderTab(tab, o.Status))
			kept[o.ID] = true
		}
		for _, o := range orders {
			if viewstate.InOrderTab(tab, o.Status) {
				assert.True(t, kept[o.ID], "order %s missing from tab %s", o.ID, tab)
			}
		}
	}
}

func TestOrderStatusStyle(t *testing.T) {
	style := viewstate.OrderStatusStyle(entities.OrderStatusShipped)
	assert.Equal(t, viewstate.StatusStyle{Label: "Shipped", Color: "#3B82F6", Icon: "Truck"}, style)

	unknown := viewstate.OrderStatusStyle(entities.OrderStatus("returned"))
	assert.Equal(t, "Returned", unknown.Label)
	assert.Equal(t, "#6B7280", unknown.Color)

	assert.True(t, viewstate.Trackable(entities.OrderStatusShipped))
	assert.False(t, viewstate.Trackable(entities.OrderStatusDelivered))
	assert.True(t, viewstate.Reorderable(entities.OrderStatusDelivered))
	assert.False(t, viewstate.Reorderable(entities.OrderStatusCancelled))
}

func TestFilterAppointments_ExactMatchOnly(t *testing.T) {
	appointments := []entities.Appointment{
		{ID: "1", DoctorName: "Dr. Sarah Johnson", Status: entities.AppointmentStatusUpcoming, Type: entities.AppointmentTypeInPerson},
		{ID: "2", DoctorName: "Dr. Michael Chen", Status: entities.AppointmentStatusUpcoming, Type: entities.AppointmentTypeVideo},
		{ID: "3", DoctorName: "Dr. James Wilson", Status: entities.AppointmentStatusCompleted},
		{ID: "4", DoctorName: "Dr. Paul Reed", Status: entities.AppointmentStatusCancelled},
	}

	assert.Len(t, viewstate.FilterAppointments(appointments, "upcoming"), 2)
	assert.Len(t, viewstate.FilterAppointments(appointments, "all"), 4)
	assert.Empty(t, viewstate.FilterAppointments(appointments, "processing"))

	partition := viewstate.PartitionAppointments(appointments)
	assert.Len(t, partition.Upcoming, 2)
	assert.Len(t, partition.Completed, 1)

	assert.Equal(t, "Video", viewstate.AppointmentBadge(entities.AppointmentTypeVideo).Label)
	assert.Equal(t, "In-person", viewstate.AppointmentBadge(entities.AppointmentTypeInPerson).Label)
}

func TestSearch(t *testing.T) {
	fields := func(l entities.Location) []string { return []string{l.Name, l.Address} }
	locations := sampleLocations()

	t.Run("empty query returns everything", func(t *testing.T) {
		assert.Equal(t, locations, viewstate.Search(locations, "", fields))
	})

	t.Run("case-insensitive on any field", func(t *testing.T) {
		result := viewstate.Search(locations, "ALKA", fields)
		require.Len(t, result, 1)
		assert.Equal(t, "2", result[0].ID)

		result = viewstate.Search(locations, "sayaji", fields)
		require.Len(t, result, 1)
		assert.Equal(t, "3", result[0].ID)
	})

	t.Run("no match", func(t *testing.T) {
		result := viewstate.Search(locations, "mumbai", fields)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}

func TestFilterClaimsAndSummary(t *testing.T) {
	claims := []entities.InsuranceClaim{
		{ID: "1", HospitalName: "City Hospital", ClaimAmount: 45000, ApprovedAmount: 45000, Status: entities.ClaimStatusApproved},
		{ID: "2", HospitalName: "Wellness Medical Center", ClaimAmount: 12000, Status: entities.ClaimStatusPending},
		{ID: "3", HospitalName: "Metro Clinic", ClaimAmount: 8500, ApprovedAmount: 7500, Status: entities.ClaimStatusApproved},
	}

	assert.Len(t, viewstate.FilterClaims(claims, "approved"), 2)
	assert.Empty(t, viewstate.FilterClaims(claims, "rejected"))
	assert.Len(t, viewstate.FilterClaims(claims, "all"), 3)

	unknown := viewstate.FilterClaims(claims, "appealed")
	assert.NotNil(t, unknown)
	assert.Empty(t, unknown)
	assert.Empty(t, viewstate.FilterClaims(claims, "Approved"), "tags match exactly")

	_, visible := viewstate.VisibleApprovedAmount(claims[1])
	assert.False(t, visible)

	summary := viewstate.SummarizeClaims(claims)
	assert.Equal(t, 65500.0, summary.TotalClaimed)
	assert.Equal(t, 52500.0, summary.TotalApproved)
	assert.InDelta(t, 80.15, summary.ApprovalRate, 0.01)
	assert.Equal(t, 2, summary.Counts[entities.ClaimStatusApproved])
}

func TestFilterDocuments(t *testing.T) {
	docs := []entities.Document{
		{ID: "1", Title: "Blood Test Report", Type: entities.DocumentTypeReport},
		{ID: "2", Title: "Prescription", Type: entities.DocumentTypePrescription},
		{ID: "3", Title: "X-Ray Report", Type: entities.DocumentTypeReport},
	}

	assert.Len(t, viewstate.FilterDocuments(docs, "report"), 2)
	assert.Len(t, viewstate.FilterDocuments(docs, "all"), 3)
	assert.Empty(t, viewstate.FilterDocuments(docs, "invoice"))

	unknown := viewstate.FilterDocuments(docs, "scan")
	assert.NotNil(t, unknown)
	assert.Empty(t, unknown)
	assert.Equal(t, 2, viewstate.DocumentTypeCounts(docs)[entities.DocumentTypeReport])
	assert.Equal(t, "Medical Record", viewstate.DocumentTypeStyle(entities.DocumentTypeMedicalRecord).Label)
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "JD", viewstate.Initials("John Doe"))
	assert.Equal(t, "DSJ", viewstate.Initials("Dr. Sarah  Johnson"))
	assert.Equal(t, "", viewstate.Initials(""))
}
