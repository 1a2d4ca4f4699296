package store

const userColumns = `user_id, username, email, password_hash, role, hotel_id, reset_token_hash, reset_expires_at, created_at, updated_at`

const (
	createUser = `INSERT INTO users (username, email, password_hash, role, hotel_id)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE lower(email) = lower($1);`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1;`

	// hash match and expiry window checked in one statement; the strict
	// "> $2" comparison implements "valid only while now < expires_at".
	findUserByResetToken = `SELECT ` + userColumns + `
    FROM users
    WHERE reset_token_hash = $1 AND reset_expires_at > $2;`

	setResetToken = `UPDATE users
    SET reset_token_hash = $2, reset_expires_at = $3, updated_at = now()
    WHERE user_id = $1;`

	// password change and reset-field clearing are one atomic UPDATE
	updatePassword = `UPDATE users
    SET password_hash = $2, reset_token_hash = NULL, reset_expires_at = NULL, updated_at = now()
    WHERE user_id = $1;`

	deleteUser = `DELETE FROM users WHERE user_id = $1;`

	listUsers = `SELECT ` + userColumns + `
    FROM users
    ORDER BY user_id;`
)

const hotelColumns = `hotel_id, name, address, devise, price, images, contact_info, status, created_at, updated_at`

const (
	findHotelByID = `SELECT ` + hotelColumns + `
    FROM hotels
    WHERE hotel_id = $1;`

	listHotels = `SELECT ` + hotelColumns + `
    FROM hotels
    ORDER BY hotel_id;`

	deleteHotel = `DELETE FROM hotels WHERE hotel_id = $1;`
)
