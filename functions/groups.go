package functions

import "fmt"

// ListGroups - prints the vpn groups matching filter
func ListGroups(filter string, short bool) error {
	c := NewClient()
	groups, err := c.Groups.Groups(filter)
	if err != nil || recovered(c) {
		return err
	}
	if short {
		for _, group := range groups.Result {
			fmt.Println(group.ID, group.Name, group.Description)
		}
		return nil
	}
	PrettyPrint(groups)
	return nil
}

// CreateGroup - creates a vpn group from file
func CreateGroup(file string) error {
	data, err := ReadPayload[map[string]any](file)
	if err != nil {
		return err
	}
	c := NewClient()
	group, err := c.Groups.CreateGroup(data)
	if err != nil || recovered(c) {
		return err
	}
	PrettyPrint(group)
	return nil
}

// UpdateGroup - patches vpn group pk from file
func UpdateGroup(pk int, file string) error {
	data, err := ReadPayload[map[string]any](file)
	if err != nil {
		return err
	}
	c := NewClient()
	group, err := c.Groups.UpdateGroup(pk, data)
	if err != nil || recovered(c) {
		return err
	}
	PrettyPrint(group)
	return nil
}

// DeleteGroup - removes vpn group pk
func DeleteGroup(pk int) error {
	c := NewClient()
	_, err := c.Groups.DeleteGroup(pk)
	if err != nil || recovered(c) {
		return err
	}
	fmt.Println("deleted group", pk)
	return nil
}
