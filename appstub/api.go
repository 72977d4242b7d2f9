package appstub

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/matchqueue/e2e/logging"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error("encode response failed", err)
	}
}

func (a *App) apiLogin(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Dữ liệu không hợp lệ"})
		return
	}

	account, ok := a.accounts.Authenticate(input.Email, input.Password)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Email hoặc mật khẩu không đúng"})
		return
	}

	token := a.sessions.Create(account.Email)

	// First login of a run seeds the notification center.
	if len(a.notificationsFor(account.Email, false)) == 0 {
		a.addNotification(account.Email, "Chào mừng "+account.Name+" quay trở lại!", true)
		a.addNotification(account.Email, "Bạn có lời mời tham gia trận đấu mới", false)
		a.addNotification(account.Email, "CLB của bạn có thành viên mới", false)
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"token": token,
		"name":  account.Name,
	})
}

func (a *App) apiSession(w http.ResponseWriter, r *http.Request) {
	email, ok := a.sessionEmail(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Phiên đăng nhập đã hết hạn"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"email": email})
}

func (a *App) apiLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("token"); err == nil {
		a.sessions.Delete(cookie.Value)
	}
	if auth := r.Header.Get("Authorization"); len(auth) > 7 {
		a.sessions.Delete(auth[7:])
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Đăng xuất thành công"})
}

func (a *App) apiCreatePost(w http.ResponseWriter, r *http.Request) {
	email, ok := a.sessionEmail(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Phiên đăng nhập đã hết hạn"})
		return
	}

	if err := r.ParseMultipartForm(8 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Dữ liệu không hợp lệ"})
		return
	}

	content := r.FormValue("content")
	if content == "" {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"message": "Nội dung bài viết không được để trống"})
		return
	}

	var imageName string
	if file, header, err := r.FormFile("image"); err == nil {
		data, readErr := io.ReadAll(file)
		_ = file.Close()
		if readErr == nil {
			imageName = a.storeUpload(data, header.Filename)
		}
	}

	account, _ := a.accounts.Get(email)
	username := email
	if account != nil {
		username = account.Username
	}

	a.posts.Add(Post{
		Username:  username,
		Content:   content,
		ImageName: imageName,
	})
	a.addNotification(email, "Bài viết của bạn đã được đăng", true)

	writeJSON(w, http.StatusCreated, map[string]string{"message": "Đăng bài thành công"})
}

func (a *App) apiStadiums(w http.ResponseWriter, r *http.Request) {
	club := r.URL.Query().Get("club")
	stadiums := stadiumsFor(club)
	if stadiums == nil {
		stadiums = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"stadiums": stadiums})
}

func (a *App) apiCreateMatch(w http.ResponseWriter, r *http.Request) {
	email, ok := a.sessionEmail(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Phiên đăng nhập đã hết hạn"})
		return
	}

	var input MatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Dữ liệu không hợp lệ"})
		return
	}

	match, fieldErrors := a.matches.Create(email, input)
	if len(fieldErrors) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": fieldErrors})
		return
	}

	a.addNotification(email, "Trận đấu tại "+match.Stadium+" đã được tạo", false)
	writeJSON(w, http.StatusCreated, map[string]any{
		"id":      match.ID,
		"message": "Tạo trận đấu thành công",
	})
}

func (a *App) apiCancelMatch(w http.ResponseWriter, r *http.Request) {
	email, ok := a.sessionEmail(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Phiên đăng nhập đã hết hạn"})
		return
	}

	var input struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Dữ liệu không hợp lệ"})
		return
	}

	id, err := strconv.ParseUint(input.ID, 10, 64)
	if err != nil || !a.matches.Cancel(email, id) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Không tìm thấy trận đấu"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Đã hủy trận đấu"})
}

func (a *App) apiCreateClub(w http.ResponseWriter, r *http.Request) {
	email, ok := a.sessionEmail(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Phiên đăng nhập đã hết hạn"})
		return
	}

	if err := r.ParseMultipartForm(8 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Dữ liệu không hợp lệ"})
		return
	}

	name := r.FormValue("name")
	if name == "" {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"errors": map[string]string{"name": "Tên đội bóng không được để trống"},
		})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"errors": map[string]string{"image": "Hình ảnh không được để trống"},
		})
		return
	}
	data, readErr := io.ReadAll(file)
	_ = file.Close()
	if readErr != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Dữ liệu không hợp lệ"})
		return
	}

	imageName := a.storeUpload(data, header.Filename)

	a.clubsMu.Lock()
	club := Club{
		ID:          a.nextClubID,
		Owner:       email,
		Name:        name,
		Description: r.FormValue("description"),
		ImageName:   imageName,
	}
	a.nextClubID++
	a.clubs = append(a.clubs, club)
	a.clubsMu.Unlock()

	a.addNotification(email, "CLB "+name+" đã được tạo", false)
	writeJSON(w, http.StatusCreated, map[string]any{
		"id":      club.ID,
		"message": "Tạo câu lạc bộ thành công",
	})
}

func (a *App) apiUpdateProfile(w http.ResponseWriter, r *http.Request) {
	email, ok := a.sessionEmail(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Phiên đăng nhập đã hết hạn"})
		return
	}

	var input struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Dữ liệu không hợp lệ"})
		return
	}

	if input.Phone != "" && !vnPhonePattern.MatchString(input.Phone) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"errors": map[string]string{"phone": "Số điện thoại không hợp lệ"},
		})
		return
	}

	if !a.accounts.UpdateProfile(email, input.Username, input.Email, input.Phone) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Không tìm thấy tài khoản"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Cập nhật thông tin thành công"})
}

func (a *App) apiUploadAvatar(w http.ResponseWriter, r *http.Request) {
	email, ok := a.sessionEmail(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Phiên đăng nhập đã hết hạn"})
		return
	}

	if err := r.ParseMultipartForm(8 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Dữ liệu không hợp lệ"})
		return
	}
	file, header, err := r.FormFile("avatar")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Hình ảnh không được để trống"})
		return
	}
	data, readErr := io.ReadAll(file)
	_ = file.Close()
	if readErr != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Dữ liệu không hợp lệ"})
		return
	}

	imageName := a.storeUpload(data, header.Filename)
	a.accounts.SetAvatar(email, imageName)

	writeJSON(w, http.StatusOK, map[string]string{"avatar": "/uploads/" + imageName})
}

func (a *App) apiMarkNotificationsRead(w http.ResponseWriter, r *http.Request) {
	email, ok := a.sessionEmail(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Phiên đăng nhập đã hết hạn"})
		return
	}

	a.notifications.Update(func(n *Notification) {
		if n.Email == email {
			n.Read = true
		}
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "Đã đánh dấu tất cả là đã đọc"})
}

func (a *App) apiDeleteNotifications(w http.ResponseWriter, r *http.Request) {
	email, ok := a.sessionEmail(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Phiên đăng nhập đã hết hạn"})
		return
	}

	// The ring has no removal; blank the entries instead so they no longer
	// render for this account.
	a.notifications.Update(func(n *Notification) {
		if n.Email == email {
			*n = Notification{}
		}
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "Đã xóa tất cả thông báo"})
}
