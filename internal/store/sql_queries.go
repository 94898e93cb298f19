package store

// Prepared SQL texts for the hand-written repositories. The generic record
// repository builds its statements with squirrel instead; these cover the
// user, password-reset, and file-reference queries whose shapes never vary.
const (
	createUser = `INSERT INTO users (username, email, password_hash, fullname, bio, image_key)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, username, email, password_hash, fullname, bio, image_key, created_at, updated_at;`

	findUserByID = `SELECT id, username, email, password_hash, fullname, bio, image_key, created_at, updated_at
    FROM users
    WHERE id = $1;`

	findUserByEmail = `SELECT id, username, email, password_hash, fullname, bio, image_key, created_at, updated_at
    FROM users
    WHERE lower(email) = lower($1);`

	findUserByUsername = `SELECT id, username, email, password_hash, fullname, bio, image_key, created_at, updated_at
    FROM users
    WHERE username = lower($1);`

	updateUserProfile = `UPDATE users
    SET fullname = $2, bio = $3, image_key = $4, updated_at = now()
    WHERE id = $1
    RETURNING id, username, email, password_hash, fullname, bio, image_key, created_at, updated_at;`

	updateUserPassword = `UPDATE users
    SET password_hash = $2, updated_at = now()
    WHERE id = $1;`
)

const (
	createPasswordReset = `INSERT INTO password_resets (email, otp_hash, expires_at)
    VALUES ($1, $2, $3)
    RETURNING id, email, otp_hash, expires_at, consumed, created_at;`

	consumePasswordResetsForEmail = `UPDATE password_resets
    SET consumed = TRUE
    WHERE lower(email) = lower($1) AND NOT consumed;`

	findActivePasswordReset = `SELECT id, email, otp_hash, expires_at, consumed, created_at
    FROM password_resets
    WHERE lower(email) = lower($1) AND NOT consumed AND expires_at > now()
    ORDER BY created_at DESC, id DESC
    LIMIT 1;`

	consumePasswordReset = `UPDATE password_resets
    SET consumed = TRUE
    WHERE id = $1;`
)

// listReferencedFileKeys collects every blob object key any record points
// at. The sweeper treats blob objects outside this set as orphans.
const listReferencedFileKeys = `SELECT file_key FROM certificates
    UNION
    SELECT image_key FROM projects WHERE image_key <> ''
    UNION
    SELECT image_key FROM users WHERE image_key <> '';`

// Unique constraint names on the users table, used to tell apart which
// column caused a unique_violation on INSERT.
const (
	usersUsernameConstraint = "users_username_key"
	usersEmailConstraint    = "users_email_key"
)
