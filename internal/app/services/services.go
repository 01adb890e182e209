// Package services implements the business operations between HTTP
// controllers and the repositories.
//
// Services defined in this package:
// - AuthService: login and token issuance
// - CollegeService: college lookups and member listings
// - EventService: event creation and browsing
// - RegistrationService: registration, attendance, feedback
// - ReportService: per-event/per-college aggregates and counter audits
package services
