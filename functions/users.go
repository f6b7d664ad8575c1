package functions

import "fmt"

// ListUsers - prints the vpn accounts, or only their names when short
func ListUsers(short bool) error {
	c := NewClient()
	users, err := c.Users.Users()
	if err != nil || recovered(c) {
		return err
	}
	if short {
		for _, user := range users.Result {
			fmt.Println(user.ID, user.Username, user.Group, user.Online)
		}
		return nil
	}
	PrettyPrint(users)
	return nil
}

// CreateUser - creates a vpn account from file
func CreateUser(file string) error {
	data, err := ReadPayload[map[string]any](file)
	if err != nil {
		return err
	}
	c := NewClient()
	user, err := c.Users.CreateUser(data)
	if err != nil || recovered(c) {
		return err
	}
	PrettyPrint(user)
	return nil
}

// UpdateUser - patches vpn account pk from file
func UpdateUser(pk int, file string) error {
	data, err := ReadPayload[map[string]any](file)
	if err != nil {
		return err
	}
	c := NewClient()
	user, err := c.Users.UpdateUser(pk, data)
	if err != nil || recovered(c) {
		return err
	}
	PrettyPrint(user)
	return nil
}

// DeleteUser - removes vpn account pk
func DeleteUser(pk int) error {
	c := NewClient()
	_, err := c.Users.DeleteUser(pk)
	if err != nil || recovered(c) {
		return err
	}
	fmt.Println("deleted user", pk)
	return nil
}

// DisconnectUser - drops the sessions of vpn account pk
func DisconnectUser(pk int) error {
	c := NewClient()
	_, err := c.Users.DisconnectUser(pk)
	if err != nil || recovered(c) {
		return err
	}
	fmt.Println("disconnected user", pk)
	return nil
}
