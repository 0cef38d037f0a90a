package appointment

import "github.com/healthguide/healthguide-api/internal/models"

const UnknownPatientName = "Unknown patient"

// PatientName returns the display name of the appointment's patient, falling
// back to a placeholder when the record was not loaded or no longer exists.
func PatientName(ap *models.Appointment) string {
	if ap.Patient == nil || ap.Patient.ID == 0 {
		return UnknownPatientName
	}
	return ap.Patient.Name
}
