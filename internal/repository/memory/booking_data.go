package memory

import "github.com/venue-booking-portal/internal/domain"

func sampleBookings() []domain.Booking {
	return []domain.Booking{
		{
			ID:         "EVD-2025-001",
			EventName:  domain.Text{En: "Sustainability Summit", Ar: "قمة الاستدامة"},
			SiteID:     "terra",
			FacilityID: "terra-auditorium",
			Date:       "2025-02-15",
			Status:     domain.BookingStatusUnderReview,
		},
		{
			ID:         "EVD-2025-002",
			EventName:  domain.Text{En: "Global Mobility Forum", Ar: "منتدى التنقل العالمي"},
			SiteID:     "jubilee-park",
			FacilityID: "jubilee-lawn",
			Date:       "2025-03-22",
			Status:     domain.BookingStatusApproved,
		},
		{
			ID:         "EVD-2024-047",
			EventName:  domain.Text{En: "Annual Innovation Awards", Ar: "حفل جوائز الابتكار السنوي"},
			SiteID:     "al-wasl",
			FacilityID: "al-wasl-plaza",
			Date:       "2024-11-20",
			Status:     domain.BookingStatusCompleted,
		},
		{
			ID:         "EVD-2025-004",
			EventName:  domain.Text{En: "Product Launch Reception", Ar: "حفل إطلاق المنتج"},
			SiteID:     "garden-in-the-sky",
			FacilityID: "sky-deck",
			Date:       "2025-05-08",
			Status:     domain.BookingStatusPendingPayment,
		},
		{
			ID:         "EVD-2025-005",
			EventName:  domain.Text{En: "Tech Startups Expo", Ar: "معرض الشركات الناشئة"},
			SiteID:     "conference-centre",
			FacilityID: "conference-hall-a",
			Date:       "2025-04-02",
			Status:     domain.BookingStatusRejected,
		},
		{
			ID:         "EVD-2025-006",
			EventName:  domain.Text{En: "Community Wellness Day", Ar: "يوم الصحة المجتمعية"},
			SiteID:     "jubilee-park",
			FacilityID: "jubilee-amphitheatre",
			Date:       "2025-06-14",
			Status:     domain.BookingStatusDraft,
		},
		{
			ID:         "EVD-2025-007",
			EventName:  domain.Text{En: "Leadership Roundtable", Ar: "طاولة القادة المستديرة"},
			SiteID:     "terra",
			FacilityID: "terra-function-room",
			Date:       "2025-05-20",
			Status:     domain.BookingStatusSubmitted,
		},
	}
}

var approvalStages = []domain.Text{
	{En: "Submitted", Ar: "تم التقديم"},
	{En: "Initial Screening", Ar: "الفحص الأولي"},
	{En: "Security", Ar: "الأمن"},
	{En: "Licensing", Ar: "التراخيص"},
	{En: "F&B Services", Ar: "خدمات الطعام"},
	{En: "Logistics", Ar: "اللوجستيات"},
	{En: "Final Decision", Ar: "القرار النهائي"},
}

var approvalStageIDs = []string{"submitted", "screening", "security", "licensing", "fnb", "logistics", "final"}

// approvalTimeline - этапы с датами завершения, после завершённых идёт один
// этап в работе, остальные ожидают
func approvalTimeline(completedDates ...string) []domain.DepartmentApproval {
	approvals := make([]domain.DepartmentApproval, len(approvalStages))
	for i := range approvalStages {
		approvals[i] = domain.DepartmentApproval{
			ID:    approvalStageIDs[i],
			Name:  approvalStages[i],
			State: domain.ApprovalPending,
		}
		switch {
		case i < len(completedDates):
			approvals[i].State = domain.ApprovalCompleted
			approvals[i].Date = completedDates[i]
		case i == len(completedDates):
			approvals[i].State = domain.ApprovalInProgress
		}
	}
	return approvals
}

func sampleApprovals(bookingID string) []domain.DepartmentApproval {
	switch bookingID {
	case "EVD-2025-001":
		return approvalTimeline("2025-01-10", "2025-01-12")
	case "EVD-2025-002":
		return approvalTimeline("2025-01-05", "2025-01-07", "2025-01-10", "2025-01-12", "2025-01-14", "2025-01-15", "2025-01-18")
	default:
		return approvalTimeline("2025-01-20")
	}
}

func sampleDocuments(bookingID string) []domain.BookingDocument {
	docs := []domain.BookingDocument{
		{Name: "Event_Proposal.pdf", Size: "2.4 MB", Date: "2025-01-10"},
		{Name: "Floor_Plan_v1.dwg", Size: "5.1 MB", Date: "2025-01-10"},
		{Name: "Company_Trade_License.pdf", Size: "1.2 MB", Date: "2025-01-10"},
	}
	if bookingID == "EVD-2025-001" {
		docs = append(docs, domain.BookingDocument{Name: "Floor_Plan_v2_Updated.dwg", Size: "5.3 MB", Date: "2025-01-28"})
	}
	return docs
}

func sampleMessages(bookingID string) []domain.BookingMessage {
	organizer := domain.Text{En: domain.SampleOrganizer.Name, Ar: domain.SampleOrganizer.Name}
	messages := []domain.BookingMessage{
		{
			Author: domain.MessageFromSystem,
			Sender: domain.Text{En: "System", Ar: "النظام"},
			Body:   domain.Text{En: "Your booking request has been submitted successfully. Our team will review it shortly.", Ar: "تم تقديم طلب الحجز الخاص بك بنجاح. سيقوم فريقنا بمراجعته قريباً."},
			SentAt: "2025-01-10 09:30",
		},
		{
			Author: domain.MessageFromCoordinator,
			Sender: domain.Text{En: "Expo City Coordinator", Ar: "منسق إكسبو سيتي"},
			Body:   domain.Text{En: "Hello, please provide an updated floor plan before 01 Feb to proceed with the review.", Ar: "مرحباً، يرجى تقديم مخطط الطابق المحدث قبل 1 فبراير للمتابعة في المراجعة."},
			SentAt: "2025-01-15 14:22",
		},
	}

	switch bookingID {
	case "EVD-2025-001":
		messages = append(messages, domain.BookingMessage{
			Author: domain.MessageFromOrganizer,
			Sender: organizer,
			Body:   domain.Text{En: "Uploaded the updated floor plan. Please review.", Ar: "تم رفع مخطط الطابق المحدث. يرجى مراجعته."},
			SentAt: "2025-01-28 11:45",
		})
	case "EVD-2025-002":
		messages = append(messages, domain.BookingMessage{
			Author: domain.MessageFromOrganizer,
			Sender: organizer,
			Body:   domain.Text{En: "Thank you for the update. Awaiting final approval.", Ar: "شكراً للتحديث. ننتظر الموافقة النهائية."},
			SentAt: "2025-01-16 10:00",
		})
	}
	return messages
}
