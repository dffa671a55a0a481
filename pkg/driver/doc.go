// Package driver checks whether a driver is eligible to drive and reports
// every reason they are not.
//
// A Driver carries an age, a blood-alcohol level and an optional Licence.
// Four independent rules inspect it:
//
//   - HasAge – fails with UnderRequiredAgeError when Age < RequiredAge
//   - IsSober – fails with AboveAllowedAlcoholLevelError when AlcoholInBlood > AllowedLevel
//   - HasDrivingLicence – fails with ErrWithoutLicence when Licence is nil
//   - HasValidDrivingLicence – fails with LicenceExpiredError when a licence
//     expired before Date; passes when there is no licence at all
//
// Rules are combined with a validator.Validator, which runs all of them and
// returns the violations in rule order:
//
//	v := driver.NewBuilder().
//	    WithRule(driver.HasDrivingLicence{}).
//	    WithRule(driver.IsSober{AllowedLevel: 0.49}).
//	    WithRule(driver.HasAge{RequiredAge: 18}).
//	    Build()
//
//	violations := v.Validate(&driver.Driver{Age: 17, AlcoholInBlood: 0.3})
//	// [Without licence, Age is: 17 years]
//
// # Policy
//
// Policy bundles the thresholds and is loaded from DRIVER_* environment
// variables through the config package. Policy.Validator builds the standard
// rule set for a reference time.
//
// # Messages
//
// Each DriverError renders a fixed English message from Error and exposes a
// translation key with placeholder values. Localize renders it through the
// bundled catalogue (English and Spanish).
package driver
