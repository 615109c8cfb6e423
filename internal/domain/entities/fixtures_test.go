package entities

import "vetmanager-api-gateway/internal/domain/payload"

// Payloads con la forma que devuelve la API (todo string, nulls donde corresponde).

func clientRaw(id string) payload.Raw {
	return payload.Raw{
		"id":                 id,
		"address":            "",
		"home_phone":         "",
		"work_phone":         "",
		"note":               "",
		"type_id":            nil,
		"how_find":           "0",
		"balance":            "-150.50",
		"email":              "ivanov@example.com",
		"city":               "Москва",
		"city_id":            "3",
		"date_register":      "2021-03-04 10:11:12",
		"cell_phone":         "+79990000000",
		"zip":                "",
		"registration_index": nil,
		"vip":                "0",
		"last_name":          "Иванов",
		"first_name":         "Иван",
		"middle_name":        "Иванович",
		"status":             "ACTIVE",
		"discount":           "5",
		"passport_series":    "",
		"lab_number":         "",
		"street_id":          "0",
		"apartment":          "",
		"unsubscribe":        "0",
		"in_blacklist":       "0",
		"last_visit_date":    "0000-00-00 00:00:00",
		"number_of_journal":  "",
		"phone_prefix":       "7",
	}
}

func petRaw(id, ownerID string) payload.Raw {
	return payload.Raw{
		"id":            id,
		"owner_id":      ownerID,
		"type_id":       "1",
		"alias":         "Барсик",
		"sex":           "male",
		"date_register": "2022-01-01 00:00:00",
		"birthday":      "2019-05-06",
		"note":          "",
		"breed_id":      nil,
		"old_id":        nil,
		"color_id":      "0",
		"deathnote":     nil,
		"deathdate":     "0000-00-00",
		"chip_number":   "",
		"lab_number":    "",
		"status":        "alive",
		"picture":       nil,
		"weight":        "4.2",
		"edit_date":     "2022-02-02 12:00:00",
	}
}

func userRaw(id string) payload.Raw {
	return payload.Raw{
		"id":                   id,
		"last_name":            "Петров",
		"first_name":           "Пётр",
		"middle_name":          "",
		"login":                "petrov",
		"passwd":               "hash",
		"position_id":          "5",
		"email":                "",
		"phone":                "",
		"cell_phone":           "",
		"address":              "",
		"role_id":              "2",
		"is_active":            "1",
		"calc_percents":        "1",
		"nickname":             "",
		"last_change_pwd_date": "0000-00-00 00:00:00",
		"is_limited":           "0",
		"carrotquest_id":       nil,
		"sip_number":           "101",
		"user_inn":             "",
	}
}

func comboItemRaw(id, comboID, value, title string) payload.Raw {
	return payload.Raw{
		"id":              id,
		"combo_manual_id": comboID,
		"title":           title,
		"value":           value,
		"dop_param1":      "",
		"dop_param2":      nil,
		"dop_param3":      "",
		"is_active":       "1",
	}
}

func medcardByClientRaw(id string) payload.Raw {
	return payload.Raw{
		"medical_card_id":      id,
		"date_edit":            "2023-01-10 09:00:00",
		"diagnos":              "0",
		"doctor_id":            "0",
		"medical_card_status":  "active",
		"healing_process":      "",
		"recomendation":        "",
		"weight":               nil,
		"temperature":          "38.5",
		"meet_result_id":       "3",
		"admission_type":       "7",
		"pet_id":               "20",
		"alias":                "Барсик",
		"birthday":             nil,
		"sex":                  "",
		"note":                 "",
		"pet_type":             "Кошка",
		"breed":                "",
		"client_id":            "10",
		"first_name":           "Иван",
		"last_name":            "Иванов",
		"middle_name":          "",
		"phone":                "",
		"doctor_nickname":      "",
		"doctor_first_name":    nil,
		"doctor_last_name":     nil,
		"doctor_middle_name":   nil,
		"editable":             "1",
		"meet_result_title":    "Повторный прием",
		"admission_type_title": "Первичный",
	}
}

func cityRaw(id, title, typeID string) payload.Raw {
	return payload.Raw{"id": id, "title": title, "type_id": typeID}
}

func cityTypeRaw(id, title string) payload.Raw {
	return payload.Raw{"id": id, "title": title}
}

func streetRaw(id, title, cityID string) payload.Raw {
	return payload.Raw{"id": id, "title": title, "city_id": cityID, "type": "street"}
}

func petTypeRaw(id, title string) payload.Raw {
	return payload.Raw{"id": id, "title": title, "picture": "cat", "type": "cat"}
}

func breedRaw(id, title, petTypeID string) payload.Raw {
	return payload.Raw{"id": id, "title": title, "pet_type_id": petTypeID}
}

func roleRaw(id, name, super string) payload.Raw {
	return payload.Raw{"id": id, "name": name, "super": super}
}

func medicalCardRaw(id, patientID string) payload.Raw {
	return payload.Raw{
		"id":             id,
		"patient_id":     patientID,
		"date_create":    "2023-01-10 09:00:00",
		"date_edit":      "2023-01-10 09:30:00",
		"diagnos":        "Гастрит",
		"recomendation":  "Диета",
		"description":    "",
		"admission_type": "7",
		"weight":         "4.3",
		"temperature":    "38.9",
		"meet_result_id": "0",
		"doctor_id":      "1",
		"creator_id":     "1",
		"status":         "active",
		"clinic_id":      "1",
	}
}
