package mysql

const insertBusinessSQL = `
INSERT INTO businesses
  (id, name, address_line1, address_line2, city, state, postal_code)
VALUES
  (?, ?, ?, ?, ?, ?, ?)
`

const deleteBusinessSQL = `DELETE FROM businesses WHERE id = ?`

const businessExistsSQL = `SELECT 1 FROM businesses WHERE id = ?`

// Single business joined with its review average. The correlated
// subquery yields NULL for zero reviews, which scans to a nil pointer.
const getBusinessSQL = `
SELECT
  b.id,
  b.name,
  b.address_line1,
  b.address_line2,
  b.city,
  b.state,
  b.postal_code,
  b.created_at,
  b.updated_at,
  (SELECT ROUND(AVG(r.rating), 1) FROM reviews r WHERE r.business_id = b.id) AS avg_rating
FROM businesses b
WHERE b.id = ?
`

// -----------------------------------------------------------------------------
// CHILD TABLES
// -----------------------------------------------------------------------------

const insertLocationSQL = `INSERT INTO locations (id, business_id, name) VALUES (?, ?, ?)`
const listLocationsSQL = `SELECT id, business_id, name FROM locations WHERE business_id = ? ORDER BY name`
const getLocationSQL = `SELECT id, business_id, name FROM locations WHERE business_id = ? AND id = ?`
const updateLocationSQL = `UPDATE locations SET name = ? WHERE business_id = ? AND id = ?`
const deleteLocationSQL = `DELETE FROM locations WHERE business_id = ? AND id = ?`

const insertHourSQL = `INSERT INTO hours (id, business_id, day_of_week, open_hour, close_hour) VALUES (?, ?, ?, ?, ?)`
const listHoursSQL = `SELECT id, business_id, day_of_week, open_hour, close_hour FROM hours WHERE business_id = ? ORDER BY day_of_week`
const getHourSQL = `SELECT id, business_id, day_of_week, open_hour, close_hour FROM hours WHERE business_id = ? AND id = ?`
const updateHourSQL = `UPDATE hours SET day_of_week = ?, open_hour = ?, close_hour = ? WHERE business_id = ? AND id = ?`
const deleteHourSQL = `DELETE FROM hours WHERE business_id = ? AND id = ?`

const insertServiceSQL = `INSERT INTO services (id, business_id, name) VALUES (?, ?, ?)`
const listServicesSQL = `SELECT id, business_id, name FROM services WHERE business_id = ? ORDER BY name`
const getServiceSQL = `SELECT id, business_id, name FROM services WHERE business_id = ? AND id = ?`
const updateServiceSQL = `UPDATE services SET name = ? WHERE business_id = ? AND id = ?`
const deleteServiceSQL = `DELETE FROM services WHERE business_id = ? AND id = ?`

const insertReviewSQL = `INSERT INTO reviews (id, business_id, rating, comment) VALUES (?, ?, ?, ?)`
const listReviewsSQL = `SELECT id, business_id, rating, comment, created_at FROM reviews WHERE business_id = ? ORDER BY created_at, id`
const getReviewSQL = `SELECT id, business_id, rating, comment, created_at FROM reviews WHERE business_id = ? AND id = ?`
const updateReviewSQL = `UPDATE reviews SET rating = ?, comment = ? WHERE business_id = ? AND id = ?`
const deleteReviewSQL = `DELETE FROM reviews WHERE business_id = ? AND id = ?`
