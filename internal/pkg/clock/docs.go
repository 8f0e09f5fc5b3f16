// Package clock is the single time authority of the service.
//
// Every instant that reaches storage comes from Authority.Now and is normalized to
// UTC at microsecond precision, which is what PostgreSQL keeps for timestamptz.
// Display strings are produced in one fixed operator zone and are never parsed back
// or compared.
//
//	auth := clock.New(clock.LoadZone("Asia/Karachi", 5*time.Hour))
//	now := auth.Now()
//	fmt.Println(auth.ToDisplay(now)) // 2025-03-01 17:04:05
//
//	seconds := auth.Duration(slot.ProcessStartTime(), &now) // nil when start is unknown
package clock
