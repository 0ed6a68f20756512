package handler

import (
	"github.com/deltacloudassociates/optmark-crm-hub/internal/compliance"
	complianceService "github.com/deltacloudassociates/optmark-crm-hub/internal/compliance/service"
)

// DocumentResponse is the wire form of one classified document.
type DocumentResponse struct {
	ID               string  `json:"id"`
	ClientID         string  `json:"client_id"`
	ClientName       string  `json:"client_name"`
	ClientType       string  `json:"client_type"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone,omitempty"`
	DocumentClass    string  `json:"document_class"`
	DocumentType     string  `json:"document_type"`
	IssueDate        *string `json:"issue_date,omitempty"`
	ExpiryDate       *string `json:"expiry_date,omitempty"`
	Status           string  `json:"status"`
	DaysRemaining    int     `json:"days_remaining"`
	LastReminderSent *string `json:"last_reminder_sent,omitempty"`
}

// DocumentsResponse wraps a document list with its length for table footers.
type DocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	Total     int                `json:"total"`
}

// SummaryResponse carries the dashboard stat-card counts.
type SummaryResponse struct {
	Expired      int `json:"expired"`
	ExpiringSoon int `json:"expiring_soon"`
	Expiring     int `json:"expiring"`
	Valid        int `json:"valid"`
	Unknown      int `json:"unknown"`
	Total        int `json:"total"`
}

func toDocumentsResponse(views []complianceService.DocumentView) DocumentsResponse {
	docs := make([]DocumentResponse, 0, len(views))
	for _, v := range views {
		docs = append(docs, DocumentResponse{
			ID:               v.ID.String(),
			ClientID:         v.SubjectID.String(),
			ClientName:       v.SubjectName,
			ClientType:       string(v.SubjectKind),
			Email:            v.Email,
			Phone:            v.Phone,
			DocumentClass:    string(v.Class),
			DocumentType:     v.Type,
			IssueDate:        formatDate(v.IssueDate),
			ExpiryDate:       formatDate(v.ExpiryDate),
			Status:           v.Status.String(),
			DaysRemaining:    v.DaysRemaining,
			LastReminderSent: formatDate(v.LastReminderSentAt),
		})
	}
	return DocumentsResponse{Documents: docs, Total: len(docs)}
}

func toSummaryResponse(counts compliance.CountsByStatus) SummaryResponse {
	return SummaryResponse{
		Expired:      counts[compliance.StatusExpired],
		ExpiringSoon: counts[compliance.StatusExpiringSoon],
		Expiring:     counts[compliance.StatusExpiring],
		Valid:        counts[compliance.StatusValid],
		Unknown:      counts[compliance.StatusUnknown],
		Total:        counts.Total(),
	}
}
