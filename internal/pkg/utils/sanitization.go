package utils

import (
	"strings"

	"clinicstack-service/internal/pkg/dto/requests"
)

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

func SanitizeCreatePatientRequest(input *requests.CreatePatient) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	input.Address = strings.TrimSpace(input.Address)
	for i, allergy := range input.Allergies {
		input.Allergies[i] = strings.TrimSpace(allergy)
	}
}

func SanitizeCreateDoctorRequest(input *requests.CreateDoctor) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Specialization = strings.TrimSpace(input.Specialization)
	input.Qualification = strings.TrimSpace(input.Qualification)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

func SanitizeUpsertScheduleRequest(input *requests.UpsertDoctorSchedule) {
	for i := range input.WeeklySchedule {
		input.WeeklySchedule[i].Day = strings.ToLower(strings.TrimSpace(input.WeeklySchedule[i].Day))
	}
	for i, leaveDate := range input.LeaveDates {
		input.LeaveDates[i] = strings.TrimSpace(leaveDate)
	}
}

func SanitizeBookAppointmentRequest(input *requests.BookAppointment) {
	input.Date = strings.TrimSpace(input.Date)
	input.StartTime = strings.TrimSpace(input.StartTime)
	input.Reason = strings.TrimSpace(input.Reason)
}
