package integration_test

const (
	dbName         = "eventstay"
	dbUser         = "test_user"
	dbPassword     = "test_password"
	dbImageName    = "postgres:17-alpine"
	cacheImageName = "redis:7"

	// User related constants
	TestUserEmail    = "test@example.com"
	TestUserPassword = "Test123!@#"

	// Enrollment related constants
	TestEnrollmentName     = "John Doe"
	TestEnrollmentDocument = "12345678901"
	TestEnrollmentBirthday = "1990-01-01"
	TestEnrollmentPhone    = "55511122233"

	// Catalog related constants
	TestHotelName   = "Grand Plaza"
	TestHotelImage  = "https://example.com/plaza.png"
	TestTicketName  = "In-person with hotel"
	TestTicketPrice = "600.00"
	TestCardNumber  = "4111111111111111"
	TestCardIssuer  = "VISA"
	TestCardExpiry  = "12/30"
	TestCardHolder  = "JOHN DOE"
	TestCardCvv     = "123"
	TestCardLast4   = "1111"
)
